package order_test

import (
	"testing"

	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.Draft, order.Intake, order.Preparation, order.Sorting,
			order.Washing, order.Finishing, order.Assembly, order.QA,
			order.Packing, order.Ready, order.OutForDelivery,
			order.Delivered, order.Closed, order.Cancelled,
		}
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid status")
	})
}

func TestStatusString(t *testing.T) {
	t.Run("should return status name", func(t *testing.T) {
		assert.Equal(t, "Draft", order.Draft.String())
		assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(99).String())
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow every forward workflow edge", func(t *testing.T) {
		edges := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Draft, order.Intake},
			{order.Intake, order.Preparation},
			{order.Preparation, order.Sorting},
			{order.Sorting, order.Washing},
			{order.Washing, order.Finishing},
			{order.Finishing, order.Assembly},
			{order.Assembly, order.QA},
			{order.QA, order.Packing},
			{order.QA, order.Assembly},
			{order.Packing, order.Ready},
			{order.Ready, order.OutForDelivery},
			{order.OutForDelivery, order.Delivered},
			{order.Delivered, order.Closed},
		}

		for _, e := range edges {
			assert.True(t, e.from.CanTransitionTo(e.to),
				"%s -> %s should be allowed", e.from, e.to)
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		nonTerminal := []order.Status{
			order.Draft, order.Intake, order.Preparation, order.Sorting,
			order.Washing, order.Finishing, order.Assembly, order.QA,
			order.Packing, order.Ready, order.OutForDelivery, order.Delivered,
		}
		for _, s := range nonTerminal {
			assert.True(t, s.CanTransitionTo(order.Cancelled),
				"%s -> Cancelled should be allowed", s)
		}
	})

	t.Run("should reject skipping stages", func(t *testing.T) {
		assert.False(t, order.Draft.CanTransitionTo(order.Washing))
		assert.False(t, order.Intake.CanTransitionTo(order.QA))
		assert.False(t, order.Assembly.CanTransitionTo(order.Packing))
	})

	t.Run("should reject backward moves outside the rework edge", func(t *testing.T) {
		assert.False(t, order.Washing.CanTransitionTo(order.Sorting))
		assert.False(t, order.Packing.CanTransitionTo(order.QA))
		assert.False(t, order.Delivered.CanTransitionTo(order.OutForDelivery))
	})

	t.Run("should reject any move out of terminal statuses", func(t *testing.T) {
		for _, target := range []order.Status{
			order.Draft, order.Intake, order.Ready, order.Cancelled, order.Closed,
		} {
			assert.False(t, order.Closed.CanTransitionTo(target))
			assert.False(t, order.Cancelled.CanTransitionTo(target))
		}
	})
}

func TestStatusIsTerminal(t *testing.T) {
	t.Run("should mark only Closed and Cancelled terminal", func(t *testing.T) {
		assert.True(t, order.Closed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.Draft.IsTerminal())
		assert.False(t, order.Delivered.IsTerminal())
	})
}

func TestStatusAllowedTargets(t *testing.T) {
	t.Run("should include rework and cancellation from QA", func(t *testing.T) {
		targets := order.QA.AllowedTargets()
		assert.ElementsMatch(t,
			[]order.Status{order.Packing, order.Assembly, order.Cancelled}, targets)
	})

	t.Run("should be empty for terminal statuses", func(t *testing.T) {
		assert.Empty(t, order.Closed.AllowedTargets())
		assert.Empty(t, order.Cancelled.AllowedTargets())
	})

	t.Run("should be empty for invalid statuses", func(t *testing.T) {
		assert.Empty(t, order.Status(99).AllowedTargets())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("should unwrap to sentinel and name both statuses", func(t *testing.T) {
		err := order.NewInvalidTransitionError(order.Draft, order.Washing)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "Draft")
		assert.Contains(t, err.Error(), "Washing")
	})
}
