package commands

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// CreateAssemblyTaskResult carries the identifier of the created task.
type CreateAssemblyTaskResult struct {
	TaskID kernel.UUID
}

// CreateAssemblyTaskCommandHandler opens assembly tasks. At most one
// incomplete task may exist per order; a second creation attempt fails with
// assembly.ErrTaskAlreadyActive.
type CreateAssemblyTaskCommandHandler struct {
	uowFactory CreateTaskUoWFactory
}

// NewCreateAssemblyTaskCommandHandler creates a handler for task creation.
func NewCreateAssemblyTaskCommandHandler(uowFactory CreateTaskUoWFactory) CreateAssemblyTaskCommandHandler {
	return CreateAssemblyTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command. The manifest is snapshotted
// from the order's line items at creation time and fixed afterwards.
func (h CreateAssemblyTaskCommandHandler) Handle(
	ctx context.Context, cmd CreateAssemblyTaskCommand,
) (CreateAssemblyTaskResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	taskRepo := uow.AssemblyTaskRepository()
	_, err = taskRepo.GetActiveByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err == nil {
		return CreateAssemblyTaskResult{}, assembly.ErrTaskAlreadyActive
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateAssemblyTaskResult{}, err
	}

	task, err := assembly.NewTask(kernel.NewUUID(), cmd.TenantID(), o)
	if err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	if err = taskRepo.Add(ctx, task); err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateAssemblyTaskResult{}, err
	}

	return CreateAssemblyTaskResult{TaskID: task.ID()}, nil
}
