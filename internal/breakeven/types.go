package breakeven

import (
	"errors"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Target is the amount the solver searches for.
type Target string

const (
	// TargetExpenses: expenses at which Alternative earns as much as Base,
	// turnover fixed.
	TargetExpenses Target = "expenses"
	// TargetTurnover: turnover at which Alternative earns as much as Base,
	// expenses fixed.
	TargetTurnover Target = "turnover"
	// TargetNetIncome: turnover Base needs to reach TargetNet, expenses fixed.
	TargetNetIncome Target = "net_income"
)

// AllTargets lists the supported targets.
var AllTargets = []Target{TargetExpenses, TargetTurnover, TargetNetIncome}

// ParseTarget accepts a target name as shown by AllTargets, plus "net".
func ParseTarget(s string) (Target, error) {
	switch s {
	case "expenses":
		return TargetExpenses, nil
	case "turnover":
		return TargetTurnover, nil
	case "net", "net_income":
		return TargetNetIncome, nil
	}
	return "", &BreakEvenError{Operation: "parse_target", Message: "unknown target " + s}
}

// DefaultMaxTurnover bounds turnover searches when no maximum is given.
var DefaultMaxTurnover = decimal.NewFromInt(1000000)

// ErrNoBreakEven is the cause when the searched amount lies outside the range.
var ErrNoBreakEven = errors.New("no break-even point in range")

// Constraints bound the searched amount.
type Constraints struct {
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`

	// TargetNet is required for TargetNetIncome.
	TargetNet *decimal.Decimal `json:"target_net,omitempty"`
}

// Request describes one search.
type Request struct {
	Target      Target                `json:"target"`
	Base        domain.Configuration  `json:"base"`
	Alternative *domain.Configuration `json:"alternative,omitempty"`
	Turnover    decimal.Decimal       `json:"turnover"`
	Expenses    decimal.Decimal       `json:"expenses"`
	Constraints Constraints           `json:"constraints"`

	MaxIterations int             `json:"-"`
	Tolerance     decimal.Decimal `json:"-"`
}

// Result is the outcome of a search. Amount is the solved expenses or
// turnover, rounded to the cent.
type Result struct {
	Request         Request `json:"request"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergence_info"`

	Amount            decimal.Decimal          `json:"amount"`
	BaseResult        domain.SimulationResult  `json:"base_result"`
	AlternativeResult *domain.SimulationResult `json:"alternative_result,omitempty"`

	// AlternativeBetterAbove is set for the two comparison targets: true
	// when Alternative wins for amounts above Amount.
	AlternativeBetterAbove bool `json:"alternative_better_above"`
}

// SolverOptions configures the bisection.
type SolverOptions struct {
	Tolerance     decimal.Decimal // width of the final bracket, in euros
	MaxIterations int
}

// DefaultSolverOptions returns cent precision with room to spare.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.01"),
		MaxIterations: 100,
	}
}

// Validate checks the request can be solved.
func (r *Request) Validate() error {
	switch r.Target {
	case TargetExpenses, TargetTurnover:
		if r.Alternative == nil {
			return &BreakEvenError{Operation: "validate_request", Message: "an alternative configuration is required"}
		}
		if r.Alternative.ActivityType != r.Base.ActivityType {
			return &BreakEvenError{Operation: "validate_request", Message: "alternative must share the base activity"}
		}
	case TargetNetIncome:
		if r.Constraints.TargetNet == nil {
			return &BreakEvenError{Operation: "validate_request", Message: "a target net income is required"}
		}
		if r.Constraints.TargetNet.IsNegative() {
			return &BreakEvenError{Operation: "validate_request", Message: "target net income cannot be negative"}
		}
	default:
		return &BreakEvenError{Operation: "validate_request", Message: "unsupported target: " + string(r.Target)}
	}

	if r.Turnover.IsNegative() || r.Expenses.IsNegative() {
		return &BreakEvenError{Operation: "validate_request", Message: "turnover and expenses cannot be negative"}
	}
	c := r.Constraints
	if c.MinAmount != nil && c.MinAmount.IsNegative() {
		return &BreakEvenError{Operation: "validate_request", Message: "min_amount cannot be negative"}
	}
	if c.MinAmount != nil && c.MaxAmount != nil && c.MinAmount.GreaterThan(*c.MaxAmount) {
		return &BreakEvenError{Operation: "validate_request", Message: "min_amount cannot be greater than max_amount"}
	}
	return nil
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
