package commands

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// CreateOrderResult carries the identifier of the captured order.
type CreateOrderResult struct {
	OrderID kernel.UUID
}

// CreateOrderCommandHandler captures new orders in Draft status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), cmd.TenantID(), cmd.Items(), cmd.ReceivedAt(), cmd.ReadyByAt(), cmd.Tax())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: o.ID()}, nil
}
