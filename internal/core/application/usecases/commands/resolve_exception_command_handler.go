package commands

import (
	"context"
	"time"
)

// ResolveExceptionCommandHandler closes open exceptions. Resolution is
// one-way: a second attempt fails with assembly.ErrExceptionAlreadyResolved
// and the original record stays untouched. Resolving never advances the
// order or task on its own.
type ResolveExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
	now        func() time.Time
}

// NewResolveExceptionCommandHandler creates a handler for exception
// resolution.
func NewResolveExceptionCommandHandler(uowFactory ExceptionUoWFactory) ResolveExceptionCommandHandler {
	return ResolveExceptionCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the resolution command.
func (h ResolveExceptionCommandHandler) Handle(ctx context.Context, cmd ResolveExceptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exceptionRepo := uow.ExceptionRepository()
	exception, err := exceptionRepo.Get(ctx, cmd.TenantID(), cmd.ExceptionID())
	if err != nil {
		return err
	}

	if err = exception.Resolve(cmd.ResolverID(), cmd.Resolution(), h.now()); err != nil {
		return err
	}

	if err = exceptionRepo.Update(ctx, exception); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
