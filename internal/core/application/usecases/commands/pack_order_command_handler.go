package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// PackOrderResult carries the packing list, whether freshly generated or
// returned from an earlier call.
type PackOrderResult struct {
	PackingListID kernel.UUID

	// AlreadyPacked reports that the task was packed before and the
	// existing list was returned.
	AlreadyPacked bool
}

// PackOrderCommandHandler generates packing lists. The operation is
// idempotent: packing an already packed task returns the existing list
// instead of creating a duplicate. Packing requires a completed task with an
// active Pass decision; otherwise it fails with assembly.ErrTaskNotReady.
type PackOrderCommandHandler struct {
	uowFactory PackUoWFactory
	now        func() time.Time
}

// NewPackOrderCommandHandler creates a handler for packing.
func NewPackOrderCommandHandler(uowFactory PackUoWFactory) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the packing command.
func (h PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) (PackOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PackOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PackOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	task, err := uow.AssemblyTaskRepository().Get(ctx, cmd.TenantID(), cmd.TaskID())
	if err != nil {
		return PackOrderResult{}, err
	}

	packingRepo := uow.PackingListRepository()
	existing, err := packingRepo.GetByTask(ctx, cmd.TenantID(), cmd.TaskID())
	if err == nil {
		return PackOrderResult{PackingListID: existing.ID(), AlreadyPacked: true}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return PackOrderResult{}, err
	}

	if !task.ReadyToPack() {
		return PackOrderResult{}, assembly.ErrTaskNotReady
	}

	list, err := assembly.NewPackingList(
		kernel.NewUUID(), cmd.TenantID(), task.ID(), cmd.PackagingType(), cmd.Note(), h.now())
	if err != nil {
		return PackOrderResult{}, err
	}

	if err = packingRepo.Add(ctx, list); err != nil {
		return PackOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PackOrderResult{}, err
	}

	return PackOrderResult{PackingListID: list.ID()}, nil
}
