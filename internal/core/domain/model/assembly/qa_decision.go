package assembly

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// DecisionType is the verdict of a quality inspection.
type DecisionType int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	DecisionUnknown DecisionType = iota

	// DecisionPass indicates the assembled order passed inspection.
	DecisionPass

	// DecisionFail indicates the assembled order failed inspection and
	// needs rework. A QAFail exception is raised alongside.
	DecisionFail
)

func getDecisionStrings() map[DecisionType]string {
	return map[DecisionType]string{
		DecisionUnknown: "Unknown",
		DecisionPass:    "Pass",
		DecisionFail:    "Fail",
	}
}

// Validate checks if the DecisionType value is valid.
func (d DecisionType) Validate() error {
	if _, ok := getDecisionStrings()[d]; !ok || d == DecisionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("decision is invalid",
			fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

// String returns the human-readable name of the decision.
func (d DecisionType) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// ErrQADecisionIsNotConstructed is returned when a QADecision was not
// created via NewQADecision or RestoreQADecision.
var ErrQADecisionIsNotConstructed = errors.New(
	"QADecision must be created via NewQADecision or RestoreQADecision")

// QADecision is an immutable record of one quality inspection verdict for an
// assembly task. Decisions are appended, never replaced: a Fail superseded
// by a later Pass after rework stays in the log, and only the latest
// decision is authoritative for gate evaluation.
type QADecision struct {
	id       kernel.UUID
	taskID   kernel.UUID
	decision DecisionType
	note     string
	photoRef string
	actorID  kernel.UUID
	at       time.Time

	isConstructed bool
}

// NewQADecision creates a QA decision record. photoRef optionally points at
// an inspection photo in external storage.
func NewQADecision(
	taskID kernel.UUID,
	decision DecisionType,
	note, photoRef string,
	actorID kernel.UUID,
	at time.Time,
) (QADecision, error) {
	if err := errors.Join(taskID.Validate(), decision.Validate(), actorID.Validate()); err != nil {
		return QADecision{}, err
	}
	if at.IsZero() {
		return QADecision{}, errs.NewValueIsRequiredError("at")
	}

	return QADecision{
		id:            kernel.NewUUID(),
		taskID:        taskID,
		decision:      decision,
		note:          note,
		photoRef:      photoRef,
		actorID:       actorID,
		at:            at,
		isConstructed: true,
	}, nil
}

// RestoreQADecision reconstructs a QA decision from persisted state.
func RestoreQADecision(
	id, taskID kernel.UUID,
	decision DecisionType,
	note, photoRef string,
	actorID kernel.UUID,
	at time.Time,
) (QADecision, error) {
	if err := errors.Join(id.Validate(), taskID.Validate(), actorID.Validate()); err != nil {
		return QADecision{}, err
	}

	return QADecision{
		id:            id,
		taskID:        taskID,
		decision:      decision,
		note:          note,
		photoRef:      photoRef,
		actorID:       actorID,
		at:            at,
		isConstructed: true,
	}, nil
}

// Validate ensures the decision was created via a constructor.
func (d QADecision) Validate() error {
	if !d.isConstructed {
		return ErrQADecisionIsNotConstructed
	}
	return nil
}

// ID returns the decision's unique identifier.
func (d QADecision) ID() kernel.UUID { return d.id }

// TaskID returns the assembly task the decision belongs to.
func (d QADecision) TaskID() kernel.UUID { return d.taskID }

// Decision returns the inspection verdict.
func (d QADecision) Decision() DecisionType { return d.decision }

// Note returns the inspector's note.
func (d QADecision) Note() string { return d.note }

// PhotoRef returns the optional reference to an inspection photo.
func (d QADecision) PhotoRef() string { return d.photoRef }

// ActorID returns the inspector.
func (d QADecision) ActorID() kernel.UUID { return d.actorID }

// At returns when the decision was recorded.
func (d QADecision) At() time.Time { return d.at }
