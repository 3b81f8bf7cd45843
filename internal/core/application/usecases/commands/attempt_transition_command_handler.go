package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
)

// AttemptTransitionResult reports the outcome of a successful transition
// attempt.
type AttemptTransitionResult struct {
	// From is the status the order held before the attempt.
	From order.Status

	// To is the order's status after the attempt.
	To order.Status

	// Changed is false for the idempotent self-transition no-op, which
	// appends no history entry.
	Changed bool
}

// AttemptTransitionCommandHandler is the transition engine: it combines the
// structural status graph check, quality gate evaluation, and the atomic
// status-update-plus-history-append into one transaction.
//
// Decision order:
//  1. target == current status: no-op success, nothing written.
//  2. target not an edge from current: order.InvalidTransitionError.
//  3. gates registered for target veto: services.GateBlockedError with the
//     full blocker list, order unchanged.
//  4. otherwise the status update and the history entry commit together,
//     with the order's version as optimistic precondition.
type AttemptTransitionCommandHandler struct {
	uowFactory TransitionUoWFactory
	evaluator  *services.GateEvaluator
	now        func() time.Time
}

// NewAttemptTransitionCommandHandler creates the transition engine. The gate
// evaluator is passed in so engines with different gate configurations can
// coexist.
func NewAttemptTransitionCommandHandler(
	uowFactory TransitionUoWFactory,
	evaluator *services.GateEvaluator,
) AttemptTransitionCommandHandler {
	return AttemptTransitionCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		now:        time.Now,
	}
}

// Handle processes the transition request.
func (h AttemptTransitionCommandHandler) Handle(
	ctx context.Context, cmd AttemptTransitionCommand,
) (AttemptTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return AttemptTransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AttemptTransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return AttemptTransitionResult{}, err
	}

	from := o.Status()
	if cmd.Target() == from {
		return AttemptTransitionResult{From: from, To: from, Changed: false}, nil
	}

	if !from.CanTransitionTo(cmd.Target()) {
		return AttemptTransitionResult{}, order.NewInvalidTransitionError(from, cmd.Target())
	}

	task, err := h.latestTask(ctx, uow, cmd)
	if err != nil {
		return AttemptTransitionResult{}, err
	}

	evaluation := h.evaluator.Evaluate(cmd.Target(), services.GateContext{Order: o, Task: task})
	if !evaluation.CanMove {
		return AttemptTransitionResult{}, services.NewGateBlockedError(cmd.Target(), evaluation.Blockers)
	}

	if _, err = o.TransitionTo(cmd.Target()); err != nil {
		return AttemptTransitionResult{}, err
	}

	entry, err := order.NewStatusHistoryEntry(
		o.ID(), from, cmd.Target(), cmd.ActorID(), h.now(), cmd.Note())
	if err != nil {
		return AttemptTransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AttemptTransitionResult{}, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, cmd.TenantID(), entry); err != nil {
		return AttemptTransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AttemptTransitionResult{}, err
	}

	return AttemptTransitionResult{From: from, To: cmd.Target(), Changed: true}, nil
}

// latestTask loads the order's most recent assembly task for gate
// evaluation. Orders that never entered assembly have none; gates decide
// what a missing task means for their target.
func (h AttemptTransitionCommandHandler) latestTask(
	ctx context.Context, uow TransitionUoW, cmd AttemptTransitionCommand,
) (*assembly.Task, error) {
	task, err := uow.AssemblyTaskRepository().GetLatestByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
