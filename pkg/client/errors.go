package client

import "errors"

var (
	ErrEmptyProjectID = errors.New("client: project id cannot be empty")
	ErrEmptyPublicKey = errors.New("client: public key cannot be empty")
	ErrInvalidConfig  = errors.New("client: invalid configuration")
)
