package order

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the workflow core. It owns the order's
// lifecycle status, its line items, and the denormalized billing totals.
//
// Order maintains these invariants:
//   - status is always a node of the status graph
//   - status changes only through TransitionTo, never by direct assignment
//   - items are validated, non-empty, and barcodes are unique per order
//   - totals are consistent with the item list
//   - version supports optimistic concurrency in the persistence layer
//
// Quality gates are deliberately not evaluated here: the aggregate enforces
// the structural graph, the application layer combines it with gate
// evaluation and history persistence into one transaction.
type Order struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	status     Status
	items      []Item
	receivedAt time.Time
	readyByAt  *time.Time
	subtotal   int64
	tax        int64
	version    int

	isConstructed bool
}

// NewOrder creates a new order in Draft status with validated items and
// totals computed from them. tax is the absolute tax amount in minor
// currency units, computed by the billing collaborator upstream.
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	items []Item,
	receivedAt time.Time,
	readyByAt *time.Time,
	tax int64,
) (*Order, error) {
	return RestoreOrder(id, tenantID, Draft, items, receivedAt, readyByAt, tax, 0)
}

// RestoreOrder reconstructs an order from persisted state, including its
// current status and optimistic-concurrency version. Used by repositories;
// new orders should be created via NewOrder.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	status Status,
	items []Item,
	receivedAt time.Time,
	readyByAt *time.Time,
	tax int64,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		status.Validate(),
		validateItems(items),
	); err != nil {
		return nil, err
	}
	if receivedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("receivedAt")
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Subtotal()
	}

	return &Order{
		id:            id,
		tenantID:      tenantID,
		status:        status,
		items:         items,
		receivedAt:    receivedAt,
		readyByAt:     readyByAt,
		subtotal:      subtotal,
		tax:           tax,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier. Every read and write of
// this order must be scoped by it.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// ReceivedAt returns the intake timestamp.
func (o *Order) ReceivedAt() time.Time {
	return o.receivedAt
}

// ReadyByAt returns the promised completion time, or nil when none was
// agreed.
func (o *Order) ReadyByAt() *time.Time {
	return o.readyByAt
}

// Subtotal returns the pre-tax total in minor currency units.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Tax returns the tax amount in minor currency units.
func (o *Order) Tax() int64 {
	return o.tax
}

// Total returns subtotal plus tax.
func (o *Order) Total() int64 {
	return o.subtotal + o.tax
}

// ItemCount returns the total number of physical pieces across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to target along the status graph.
//
// A target equal to the current status is an idempotent no-op: it succeeds
// with changed == false and the caller must not append a history entry.
// A target that is not an edge from the current status fails with
// InvalidTransitionError and leaves the order unchanged.
func (o *Order) TransitionTo(target Status) (changed bool, err error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	if target == o.status {
		return false, nil
	}

	if !o.status.CanTransitionTo(target) {
		return false, NewInvalidTransitionError(o.status, target)
	}

	o.status = target
	return true, nil
}
