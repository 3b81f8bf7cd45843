package assembly_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewException(t *testing.T) {
	raisedAt := time.Now().UTC()

	t.Run("should raise an open exception", func(t *testing.T) {
		e, err := assembly.NewException(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assembly.KindItemMismatch, raisedAt)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, assembly.KindItemMismatch, e.Kind())
		assert.Equal(t, raisedAt, e.RaisedAt())
		assert.False(t, e.IsResolved())
		assert.Nil(t, e.Resolution())
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		e, err := assembly.NewException(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assembly.KindUnknown, raisedAt)

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should fail with zero raise time", func(t *testing.T) {
		e, err := assembly.NewException(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assembly.KindQAFail, time.Time{})

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "raisedAt")
	})
}

func TestExceptionResolve(t *testing.T) {
	newOpenException := func(t *testing.T) *assembly.Exception {
		t.Helper()
		e, err := assembly.NewException(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assembly.KindMissingItem, time.Now().UTC())
		require.NoError(t, err)
		return e
	}

	t.Run("should record the resolution", func(t *testing.T) {
		e := newOpenException(t)
		resolverID := kernel.NewUUID()
		resolvedAt := time.Now().UTC()

		err := e.Resolve(resolverID, "found in batch 7", resolvedAt)

		require.NoError(t, err)
		assert.True(t, e.IsResolved())
		require.NotNil(t, e.Resolution())
		assert.Equal(t, resolverID, e.Resolution().ResolverID)
		assert.Equal(t, "found in batch 7", e.Resolution().Text)
		assert.Equal(t, resolvedAt, e.Resolution().ResolvedAt)
	})

	t.Run("should reject a second resolution and keep the first", func(t *testing.T) {
		e := newOpenException(t)
		require.NoError(t, e.Resolve(kernel.NewUUID(), "first", time.Now().UTC()))

		err := e.Resolve(kernel.NewUUID(), "second", time.Now().UTC())

		require.ErrorIs(t, err, assembly.ErrExceptionAlreadyResolved)
		assert.Equal(t, "first", e.Resolution().Text)
	})

	t.Run("should fail with empty resolution text", func(t *testing.T) {
		e := newOpenException(t)

		err := e.Resolve(kernel.NewUUID(), "", time.Now().UTC())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolution")
		assert.False(t, e.IsResolved())
	})

	t.Run("should fail with invalid resolver", func(t *testing.T) {
		e := newOpenException(t)

		err := e.Resolve(kernel.UUID{}, "done", time.Now().UTC())

		require.Error(t, err)
		assert.False(t, e.IsResolved())
	})
}

func TestExceptionKind(t *testing.T) {
	t.Run("should name all kinds", func(t *testing.T) {
		assert.Equal(t, "ItemMismatch", assembly.KindItemMismatch.String())
		assert.Equal(t, "MissingItem", assembly.KindMissingItem.String())
		assert.Equal(t, "QAFail", assembly.KindQAFail.String())
		assert.Equal(t, "Unknown", assembly.ExceptionKind(42).String())
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		require.Error(t, assembly.KindUnknown.Validate())
		require.NoError(t, assembly.KindItemMismatch.Validate())
	})
}
