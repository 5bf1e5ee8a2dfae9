package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cuid2/internal/errors"
	"github.com/allisson/cuid2/internal/identifier/domain"
)

func TestNewGeneratorRegistry(t *testing.T) {
	t.Run("Success_ComputesFingerprint", func(t *testing.T) {
		registry, err := NewGeneratorRegistry(24, "")
		require.NoError(t, err)

		assert.Len(t, registry.Fingerprint(), 32)
		assert.Equal(t, 24, registry.DefaultLength())
	})

	t.Run("Success_PinnedFingerprint", func(t *testing.T) {
		registry, err := NewGeneratorRegistry(24, "node-a")
		require.NoError(t, err)

		assert.Equal(t, "node-a", registry.Fingerprint())
	})

	t.Run("Error_DefaultLengthTooLong", func(t *testing.T) {
		registry, err := NewGeneratorRegistry(64, "")
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})

	t.Run("Error_DefaultLengthTooShort", func(t *testing.T) {
		registry, err := NewGeneratorRegistry(1, "")
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})
}

func TestGeneratorRegistry_Get(t *testing.T) {
	registry, err := NewGeneratorRegistry(24, "")
	require.NoError(t, err)

	t.Run("Success_DefaultLength", func(t *testing.T) {
		gen, err := registry.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 24, gen.Length())
	})

	t.Run("Success_ReusesGenerator", func(t *testing.T) {
		first, err := registry.Get(10)
		require.NoError(t, err)
		second, err := registry.Get(10)
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("Success_DistinctLengths", func(t *testing.T) {
		short, err := registry.Get(8)
		require.NoError(t, err)
		long, err := registry.Get(32)
		require.NoError(t, err)

		assert.Len(t, short.Generate(), 8)
		assert.Len(t, long.Generate(), 32)
	})

	t.Run("Error_InvalidLength", func(t *testing.T) {
		for _, length := range []int{-1, 1, 33, 100} {
			gen, err := registry.Get(length)
			assert.Nil(t, gen)
			assert.ErrorIs(t, err, domain.ErrInvalidLength)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		}
	})
}

func TestGeneratorRegistry_HealthCheck(t *testing.T) {
	registry, err := NewGeneratorRegistry(24, "")
	require.NoError(t, err)

	t.Run("Success_Healthy", func(t *testing.T) {
		assert.NoError(t, registry.HealthCheck(context.Background()))
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, registry.HealthCheck(ctx), context.Canceled)
	})
}
