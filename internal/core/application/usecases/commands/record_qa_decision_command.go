package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

// ErrRecordQADecisionCommandIsNotConstructed is returned when the command
// was not created via NewRecordQADecisionCommand.
var ErrRecordQADecisionCommandIsNotConstructed = errors.New(
	"RecordQADecisionCommand must be created via NewRecordQADecisionCommand")

// RecordQADecisionCommand represents a quality inspection verdict for an
// assembly task.
type RecordQADecisionCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	tenantID kernel.UUID
	decision assembly.DecisionType
	note     string
	photoRef string
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordQADecisionCommand creates a validated QA decision request.
func NewRecordQADecisionCommand(
	taskID, tenantID kernel.UUID,
	decision assembly.DecisionType,
	note, photoRef string,
	actorID kernel.UUID,
) (RecordQADecisionCommand, error) {
	cmd := RecordQADecisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		tenantID.Validate(),
		decision.Validate(),
		actorID.Validate(),
	); err != nil {
		return RecordQADecisionCommand{}, err
	}

	cmd.taskID = taskID
	cmd.tenantID = tenantID
	cmd.decision = decision
	cmd.note = note
	cmd.photoRef = photoRef
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordQADecisionCommand) Validate() error {
	return c.guard.Validate(ErrRecordQADecisionCommandIsNotConstructed)
}

// TaskID returns the inspected assembly task.
func (c RecordQADecisionCommand) TaskID() kernel.UUID {
	return c.taskID
}

// TenantID returns the tenant scope of the request.
func (c RecordQADecisionCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Decision returns the inspection verdict.
func (c RecordQADecisionCommand) Decision() assembly.DecisionType {
	return c.decision
}

// Note returns the inspector's note.
func (c RecordQADecisionCommand) Note() string {
	return c.note
}

// PhotoRef returns the optional reference to an inspection photo.
func (c RecordQADecisionCommand) PhotoRef() string {
	return c.photoRef
}

// ActorID returns the inspector.
func (c RecordQADecisionCommand) ActorID() kernel.UUID {
	return c.actorID
}
