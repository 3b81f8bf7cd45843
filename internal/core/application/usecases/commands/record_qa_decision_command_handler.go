package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
)

// RecordQADecisionResult reports the recorded decision and, for failures,
// the raised exception.
type RecordQADecisionResult struct {
	DecisionID kernel.UUID

	// ExceptionID is set when a Fail verdict raised a QAFail exception.
	ExceptionID *kernel.UUID
}

// RecordQADecisionCommandHandler records quality inspection verdicts.
// Recording is rejected with assembly.ErrTaskNotReady while scan
// reconciliation is incomplete. A Fail verdict raises a QAFail exception but
// does not block later re-recording: the latest decision is authoritative.
type RecordQADecisionCommandHandler struct {
	uowFactory AssemblyUoWFactory
	now        func() time.Time
}

// NewRecordQADecisionCommandHandler creates a handler for QA decisions.
func NewRecordQADecisionCommandHandler(uowFactory AssemblyUoWFactory) RecordQADecisionCommandHandler {
	return RecordQADecisionCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the QA decision command.
func (h RecordQADecisionCommandHandler) Handle(
	ctx context.Context, cmd RecordQADecisionCommand,
) (RecordQADecisionResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordQADecisionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordQADecisionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.AssemblyTaskRepository()
	task, err := taskRepo.Get(ctx, cmd.TenantID(), cmd.TaskID())
	if err != nil {
		return RecordQADecisionResult{}, err
	}

	decision, err := task.RecordDecision(
		cmd.Decision(), cmd.Note(), cmd.PhotoRef(), cmd.ActorID(), h.now())
	if err != nil {
		return RecordQADecisionResult{}, err
	}

	result := RecordQADecisionResult{DecisionID: decision.ID()}

	if cmd.Decision() == assembly.DecisionFail {
		exception, excErr := assembly.NewException(
			kernel.NewUUID(), cmd.TenantID(), task.ID(), assembly.KindQAFail, h.now())
		if excErr != nil {
			return RecordQADecisionResult{}, excErr
		}
		if excErr = uow.ExceptionRepository().Add(ctx, exception); excErr != nil {
			return RecordQADecisionResult{}, excErr
		}
		id := exception.ID()
		result.ExceptionID = &id
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return RecordQADecisionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordQADecisionResult{}, err
	}

	return result, nil
}
