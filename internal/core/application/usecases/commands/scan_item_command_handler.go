package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
)

// ScanItemResult reports the outcome of one barcode scan.
type ScanItemResult struct {
	// ItemID identifies the matched manifest line; nil for mismatches.
	ItemID *kernel.UUID

	// Outcome classifies the scan.
	Outcome assembly.MatchOutcome

	// AllItemsProcessed reports whether the scan completed reconciliation.
	AllItemsProcessed bool

	// ExceptionID is set when the scan raised an ItemMismatch exception.
	ExceptionID *kernel.UUID
}

// ScanItemCommandHandler applies barcode scans to assembly tasks. A mismatch
// automatically raises an open ItemMismatch exception in the same
// transaction; the scan event, the manifest counts and the exception commit
// or roll back together, so a mismatch never corrupts task state.
type ScanItemCommandHandler struct {
	uowFactory AssemblyUoWFactory
	now        func() time.Time
}

// NewScanItemCommandHandler creates a handler for scan processing.
func NewScanItemCommandHandler(uowFactory AssemblyUoWFactory) ScanItemCommandHandler {
	return ScanItemCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the scan. The task is persisted with its version as
// optimistic precondition, which serializes concurrent scans of the same
// task: the losing scan fails with errs.ConcurrentConflictError and no
// remaining-quantity unit is consumed twice.
func (h ScanItemCommandHandler) Handle(ctx context.Context, cmd ScanItemCommand) (ScanItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScanItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScanItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.AssemblyTaskRepository()
	task, err := taskRepo.Get(ctx, cmd.TenantID(), cmd.TaskID())
	if err != nil {
		return ScanItemResult{}, err
	}

	scan, err := task.Scan(cmd.Barcode(), cmd.ActorID(), h.now())
	if err != nil {
		return ScanItemResult{}, err
	}

	result := ScanItemResult{
		ItemID:            scan.ItemID,
		Outcome:           scan.Outcome,
		AllItemsProcessed: task.AllItemsProcessed(),
	}

	if scan.Outcome == assembly.OutcomeMismatch {
		exception, excErr := assembly.NewException(
			kernel.NewUUID(), cmd.TenantID(), task.ID(), assembly.KindItemMismatch, h.now())
		if excErr != nil {
			return ScanItemResult{}, excErr
		}
		if excErr = uow.ExceptionRepository().Add(ctx, exception); excErr != nil {
			return ScanItemResult{}, excErr
		}
		id := exception.ID()
		result.ExceptionID = &id
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return ScanItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanItemResult{}, err
	}

	return result, nil
}
