package internal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traduki/traduki-go/internal"
	"github.com/traduki/traduki-go/pkg/client"
	"github.com/traduki/traduki-go/pkg/clienttest"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the provider from context", func(t *testing.T) {
		t.Parallel()
		fake := clienttest.New()
		p := internal.NewProvider(fake.Factory(), client.Config{ProjectID: "p", PublicKey: "k"})
		defer p.Close()

		ctx := internal.NewContext(context.Background(), p)
		got, err := internal.FromContext(ctx)
		require.NoError(t, err)
		require.Same(t, p, got)
	})

	t.Run("errors without provider", func(t *testing.T) {
		t.Parallel()
		_, err := internal.FromContext(context.Background())
		require.ErrorIs(t, err, internal.ErrNoProvider)
	})

	t.Run("errors on nil provider in context", func(t *testing.T) {
		t.Parallel()
		ctx := internal.NewContext(context.Background(), nil)
		_, err := internal.FromContext(ctx)
		require.ErrorIs(t, err, internal.ErrNoProvider)
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the provider", func(t *testing.T) {
		t.Parallel()
		fake := clienttest.New()
		p := internal.NewProvider(fake.Factory(), client.Config{ProjectID: "p", PublicKey: "k"})
		defer p.Close()

		ctx := internal.NewContext(context.Background(), p)
		require.Same(t, p, internal.MustFromContext(ctx))
	})

	t.Run("panics without provider", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			internal.MustFromContext(context.Background())
		})
	})
}
