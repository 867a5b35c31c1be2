// Package client defines the contract with the hosted translation service.
//
// The translation engine itself (locale negotiation, interpolation,
// background key creation, caching, network I/O) lives in a separate
// implementation package; this package only describes construction and the
// small surface the provider consumes. A Client is expected to construct
// cheaply and perform its initial fetch lazily: Ready blocks until the
// first batch of translation data is available, after which synchronous
// lookups are valid.
//
// Configuration can be built literally, from the environment, or from a
// YAML document:
//
//	cfg, err := client.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Detector = detector.FromEnv()
package client
