package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds break-even amounts by bisection over the calculation engine.
// Net income is piecewise linear and non-decreasing in turnover, so one
// sign change of the searched gap is enough to bracket the answer.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve runs the search described by req.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetExpenses:
		return s.solveExpenses(ctx, req)
	case TargetTurnover:
		return s.solveTurnover(ctx, req)
	default:
		return s.solveNetIncome(ctx, req)
	}
}

func (s *Solver) calculate(cfg domain.Configuration, turnover, expenses decimal.Decimal) domain.SimulationResult {
	return s.CalcEngine.Calculate(domain.SimulationInput{
		Configuration: cfg,
		Turnover:      turnover,
		Expenses:      expenses,
	})
}

// bounds applies the request constraints over the default range.
func bounds(op string, c Constraints, lo, hi decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if c.MinAmount != nil {
		lo = *c.MinAmount
	}
	if c.MaxAmount != nil {
		hi = *c.MaxAmount
	}
	if lo.GreaterThan(hi) {
		return lo, hi, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("empty search range [%s, %s]", lo.StringFixed(2), hi.StringFixed(2)),
		}
	}
	return lo, hi, nil
}

// solveExpenses searches expenses between zero and the turnover.
func (s *Solver) solveExpenses(ctx context.Context, req Request) (*Result, error) {
	lo, hi, err := bounds("solve_expenses", req.Constraints, decimal.Zero, req.Turnover)
	if err != nil {
		return nil, err
	}
	at := func(expenses decimal.Decimal) (domain.SimulationResult, domain.SimulationResult) {
		return s.calculate(req.Base, req.Turnover, expenses), s.calculate(*req.Alternative, req.Turnover, expenses)
	}
	return s.crossing(ctx, req, "solve_expenses", lo, hi, at)
}

// solveTurnover searches turnover from the expenses level upwards; below
// it both configurations only lose money.
func (s *Solver) solveTurnover(ctx context.Context, req Request) (*Result, error) {
	lo, hi, err := bounds("solve_turnover", req.Constraints, req.Expenses, DefaultMaxTurnover)
	if err != nil {
		return nil, err
	}
	at := func(turnover decimal.Decimal) (domain.SimulationResult, domain.SimulationResult) {
		return s.calculate(req.Base, turnover, req.Expenses), s.calculate(*req.Alternative, turnover, req.Expenses)
	}
	return s.crossing(ctx, req, "solve_turnover", lo, hi, at)
}

// crossing bisects on the net income gap between the alternative and the
// base configuration.
func (s *Solver) crossing(
	ctx context.Context,
	req Request,
	op string,
	lo, hi decimal.Decimal,
	at func(decimal.Decimal) (base, alt domain.SimulationResult),
) (*Result, error) {
	gap := func(x decimal.Decimal) decimal.Decimal {
		base, alt := at(x)
		return alt.NetIncomeBeforeTax.Sub(base.NetIncomeBeforeTax)
	}

	gLo, gHi := gap(lo), gap(hi)
	if gLo.Sign()*gHi.Sign() > 0 || (gLo.IsZero() && gHi.IsZero()) {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("net incomes do not cross between %s and %s", lo.StringFixed(2), hi.StringFixed(2)),
			Cause:     ErrNoBreakEven,
		}
	}

	rising := gHi.IsPositive() || gLo.IsNegative()
	iterations := 0

	switch {
	case gLo.IsZero():
		hi = lo
	case gHi.IsZero():
		lo = hi
	}

	for hi.Sub(lo).GreaterThan(req.Tolerance) {
		if iterations >= req.MaxIterations {
			return nil, &BreakEvenError{
				Operation: op,
				Message:   fmt.Sprintf("bisection did not converge after %d iterations", req.MaxIterations),
			}
		}
		iterations++

		select {
		case <-ctx.Done():
			return nil, &BreakEvenError{Operation: op, Message: "cancelled", Cause: ctx.Err()}
		default:
		}

		mid := lo.Add(hi).Div(two)
		g := gap(mid)
		if g.IsZero() {
			lo, hi = mid, mid
			break
		}
		if g.IsPositive() == rising {
			hi = mid
		} else {
			lo = mid
		}
	}

	amount := lo.Add(hi).Div(two).Round(2)
	base, alt := at(amount)
	return &Result{
		Request:                req,
		Success:                true,
		Iterations:             iterations,
		ConvergenceInfo:        fmt.Sprintf("converged within %s after %d iterations", req.Tolerance.String(), iterations),
		Amount:                 amount,
		BaseResult:             base,
		AlternativeResult:      &alt,
		AlternativeBetterAbove: rising,
	}, nil
}

// solveNetIncome searches the smallest turnover at which the base
// configuration reaches the target net income.
func (s *Solver) solveNetIncome(ctx context.Context, req Request) (*Result, error) {
	const op = "solve_net_income"
	lo, hi, err := bounds(op, req.Constraints, decimal.Zero, DefaultMaxTurnover)
	if err != nil {
		return nil, err
	}
	target := *req.Constraints.TargetNet
	net := func(turnover decimal.Decimal) decimal.Decimal {
		return s.calculate(req.Base, turnover, req.Expenses).NetIncomeBeforeTax
	}

	if net(hi).LessThan(target) {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("net income %s is out of reach below a turnover of %s", target.StringFixed(2), hi.StringFixed(2)),
			Cause:     ErrNoBreakEven,
		}
	}

	iterations := 0
	if net(lo).GreaterThanOrEqual(target) {
		hi = lo
	}
	for hi.Sub(lo).GreaterThan(req.Tolerance) {
		if iterations >= req.MaxIterations {
			return nil, &BreakEvenError{
				Operation: op,
				Message:   fmt.Sprintf("bisection did not converge after %d iterations", req.MaxIterations),
			}
		}
		iterations++

		select {
		case <-ctx.Done():
			return nil, &BreakEvenError{Operation: op, Message: "cancelled", Cause: ctx.Err()}
		default:
		}

		mid := lo.Add(hi).Div(two)
		if net(mid).LessThan(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	// Net income never decreases with turnover, so rounding up keeps the target.
	amount := hi.RoundCeil(2)
	return &Result{
		Request:         req,
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("converged within %s after %d iterations", req.Tolerance.String(), iterations),
		Amount:          amount,
		BaseResult:      s.calculate(req.Base, amount, req.Expenses),
	}, nil
}
