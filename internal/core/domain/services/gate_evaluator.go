package services

import (
	"errors"
	"fmt"
	"strings"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/order"
)

// ErrGateBlocked is the sentinel for transitions that are structurally legal
// but vetoed by one or more quality gates.
var ErrGateBlocked = errors.New("gate blocked")

// GateBlockedError reports a vetoed transition together with every
// outstanding blocker, so callers can display all issues at once.
type GateBlockedError struct {
	Target   order.Status
	Blockers []string
}

// NewGateBlockedError creates a GateBlockedError for the given target status.
func NewGateBlockedError(target order.Status, blockers []string) *GateBlockedError {
	return &GateBlockedError{Target: target, Blockers: blockers}
}

func (e *GateBlockedError) Error() string {
	return fmt.Sprintf("%s: cannot enter %s: %s",
		ErrGateBlocked, e.Target, strings.Join(e.Blockers, "; "))
}

func (e *GateBlockedError) Unwrap() error {
	return ErrGateBlocked
}

// GateContext carries the state quality gates inspect: the order under
// transition and its active assembly task, which is nil when no task exists.
type GateContext struct {
	Order *order.Order
	Task  *assembly.Task
}

// Gate is one named precondition on entering a target status. Check returns
// an empty string when the gate passes, or a human-readable blocker reason.
type Gate struct {
	Name  string
	Check func(GateContext) string
}

// Config selects the evaluator's enforcement behavior. It is passed at
// construction so evaluators with different modes can coexist; the evaluator
// never reads ambient process state.
type Config struct {
	// EnforceGates makes blockers veto the transition. When false the
	// evaluator still reports blockers but allows the move (advisory
	// mode, used during workflow rollouts).
	EnforceGates bool
}

// DefaultConfig returns the production configuration: gates enforced.
func DefaultConfig() Config {
	return Config{EnforceGates: true}
}

// Evaluation is the result of running every gate registered for a target
// status. Blockers accumulate rather than short-circuiting on the first
// failure.
type Evaluation struct {
	CanMove  bool
	Blockers []string
}

// GateEvaluator is the domain service deciding whether a structurally legal
// transition may proceed. Gates are registered per target status; a target
// with no registered gates trivially passes. This open-by-default baseline
// is deliberate — new statuses stay ungated until a gate is explicitly
// registered — and must not be tightened into deny-by-default.
type GateEvaluator struct {
	config Config
	gates  map[order.Status][]Gate
}

// NewGateEvaluator creates an evaluator with the standard workflow gates
// registered: entering QA requires complete scan reconciliation; entering
// Packing requires a passing QA decision; entering Ready requires both.
func NewGateEvaluator(config Config) *GateEvaluator {
	e := &GateEvaluator{
		config: config,
		gates:  make(map[order.Status][]Gate),
	}

	e.Register(order.QA, Gate{Name: "assembly-complete", Check: assemblyCompleteCheck})
	e.Register(order.Packing, Gate{Name: "qa-passed", Check: qaPassedCheck})
	e.Register(order.Ready, Gate{Name: "assembly-complete", Check: assemblyCompleteCheck})
	e.Register(order.Ready, Gate{Name: "qa-passed", Check: qaPassedCheck})

	return e
}

// Register adds a gate for a target status. Multiple gates per target are
// evaluated in registration order and all of them must pass.
func (e *GateEvaluator) Register(target order.Status, gate Gate) {
	e.gates[target] = append(e.gates[target], gate)
}

// Evaluate runs every gate registered for the target status and accumulates
// all blockers. With no gates registered the evaluation trivially passes.
// In advisory mode CanMove is always true; blockers are still reported.
func (e *GateEvaluator) Evaluate(target order.Status, ctx GateContext) Evaluation {
	var blockers []string
	for _, gate := range e.gates[target] {
		if blocker := gate.Check(ctx); blocker != "" {
			blockers = append(blockers, blocker)
		}
	}

	canMove := len(blockers) == 0 || !e.config.EnforceGates
	return Evaluation{CanMove: canMove, Blockers: blockers}
}

// assemblyCompleteCheck blocks until the order's active assembly task has
// every manifest line fully scanned.
func assemblyCompleteCheck(ctx GateContext) string {
	if ctx.Task == nil {
		return "no assembly task exists for this order"
	}
	if !ctx.Task.AllItemsProcessed() {
		return fmt.Sprintf("assembly incomplete: %d of %d items scanned",
			ctx.Task.ScannedCount(), ctx.Task.ExpectedCount())
	}
	return ""
}

// qaPassedCheck blocks until the active QA decision of the order's assembly
// task is Pass. Earlier failed decisions do not block once superseded.
func qaPassedCheck(ctx GateContext) string {
	if ctx.Task == nil {
		return "no assembly task exists for this order"
	}
	active := ctx.Task.ActiveDecision()
	if active == nil {
		return "no QA decision recorded"
	}
	if active.Decision() != assembly.DecisionPass {
		return fmt.Sprintf("active QA decision is %s", active.Decision())
	}
	return ""
}
