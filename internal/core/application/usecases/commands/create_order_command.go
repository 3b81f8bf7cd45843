package commands

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand")

// CreateOrderCommand represents a request to capture a new order in Draft
// status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	items      []order.Item
	receivedAt time.Time
	readyByAt  *time.Time
	tax        int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order creation request. Item
// validation happens when the aggregate is built; here only presence is
// checked.
func NewCreateOrderCommand(
	tenantID kernel.UUID,
	items []order.Item,
	receivedAt time.Time,
	readyByAt *time.Time,
	tax int64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tenantID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if receivedAt.IsZero() {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("receivedAt")
	}

	cmd.tenantID = tenantID
	cmd.items = items
	cmd.receivedAt = receivedAt
	cmd.readyByAt = readyByAt
	cmd.tax = tax
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the request.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ReceivedAt returns the intake timestamp.
func (c CreateOrderCommand) ReceivedAt() time.Time {
	return c.receivedAt
}

// ReadyByAt returns the promised completion time, or nil.
func (c CreateOrderCommand) ReadyByAt() *time.Time {
	return c.readyByAt
}

// Tax returns the tax amount in minor currency units.
func (c CreateOrderCommand) Tax() int64 {
	return c.tax
}
