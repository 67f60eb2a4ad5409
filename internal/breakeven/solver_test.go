package breakeven

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(tax domain.TaxRegime, social domain.SocialContributionRegime) domain.Configuration {
	return domain.NewConfiguration(domain.ActivityServices, tax, social, domain.VatFranchise)
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestNewSolver(t *testing.T) {
	calcEngine := calculation.NewCalculationEngine()
	options := DefaultSolverOptions()

	solver := NewSolver(calcEngine, options)

	require.NotNil(t, solver)
	assert.Same(t, calcEngine, solver.CalcEngine)
	assert.Equal(t, options, solver.Options)
}

func TestNewDefaultSolver(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	assert.Equal(t, 100, solver.Options.MaxIterations)
	assert.True(t, solver.Options.Tolerance.Equal(decimal.RequireFromString("0.01")))
}

func TestSolve_Expenses(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	alt := services(domain.TaxRegimeFlatRate, domain.SocialRegimeStandard)

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetExpenses,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Alternative: &alt,
		Turnover:    decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	// 27 500 + 45% of expenses meets the 39 400 micro-social net at 26 444.44.
	assert.True(t, result.Success)
	assert.InDelta(t, 26444.44, result.Amount.InexactFloat64(), 0.02)
	assert.True(t, result.AlternativeBetterAbove)
	assert.Positive(t, result.Iterations)
	require.NotNil(t, result.AlternativeResult)
	assert.InDelta(t, result.BaseResult.NetIncomeBeforeTax.InexactFloat64(),
		result.AlternativeResult.NetIncomeBeforeTax.InexactFloat64(), 0.05)
}

func TestSolve_Turnover(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	alt := services(domain.TaxRegimeFlatRate, domain.SocialRegimeStandard)

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetTurnover,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Alternative: &alt,
		Expenses:    decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	// 78.8% of turnover against 55% of turnover + 9 000.
	assert.InDelta(t, 37815.13, result.Amount.InexactFloat64(), 0.02)
	assert.False(t, result.AlternativeBetterAbove)
}

func TestSolve_NetIncome(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetNetIncome,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Constraints: Constraints{TargetNet: amount(39400)},
	})
	require.NoError(t, err)

	assert.InDelta(t, 50000, result.Amount.InexactFloat64(), 0.02)
	assert.True(t, result.BaseResult.NetIncomeBeforeTax.GreaterThanOrEqual(decimal.NewFromInt(39400)))
	assert.Nil(t, result.AlternativeResult)
}

func TestSolve_NetIncomeZeroTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetNetIncome,
		Base:        services(domain.TaxRegimeActualSimplified, domain.SocialRegimeStandard),
		Expenses:    decimal.NewFromInt(10000),
		Constraints: Constraints{TargetNet: amount(0)},
	})
	require.NoError(t, err)

	assert.True(t, result.Amount.IsZero())
	assert.Equal(t, 0, result.Iterations)
}

func TestSolve_NoBreakEven(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	alt := services(domain.TaxRegimeActualSimplified, domain.SocialRegimeStandard)

	_, err := solver.Solve(context.Background(), Request{
		Target:      TargetExpenses,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Alternative: &alt,
		Turnover:    decimal.NewFromInt(50000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBreakEven))

	_, err = solver.Solve(context.Background(), Request{
		Target:      TargetNetIncome,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Constraints: Constraints{TargetNet: amount(2000000)},
	})
	assert.True(t, errors.Is(err, ErrNoBreakEven))
}

func TestSolve_Constraints(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	alt := services(domain.TaxRegimeFlatRate, domain.SocialRegimeStandard)
	req := Request{
		Target:      TargetExpenses,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Alternative: &alt,
		Turnover:    decimal.NewFromInt(50000),
	}

	req.Constraints = Constraints{MaxAmount: amount(20000)}
	_, err := solver.Solve(context.Background(), req)
	assert.True(t, errors.Is(err, ErrNoBreakEven))

	req.Constraints = Constraints{MinAmount: amount(20000), MaxAmount: amount(30000)}
	result, err := solver.Solve(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 26444.44, result.Amount.InexactFloat64(), 0.02)
}

func TestSolve_MaxIterations(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	alt := services(domain.TaxRegimeFlatRate, domain.SocialRegimeStandard)

	_, err := solver.Solve(context.Background(), Request{
		Target:        TargetExpenses,
		Base:          services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Alternative:   &alt,
		Turnover:      decimal.NewFromInt(50000),
		MaxIterations: 3,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not converge after 3 iterations")
}

func TestSolve_Cancelled(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, Request{
		Target:      TargetNetIncome,
		Base:        services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate),
		Constraints: Constraints{TargetNet: amount(39400)},
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRequest_Validate(t *testing.T) {
	base := services(domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate)
	bnc := domain.NewConfiguration(domain.ActivityLiberalProfession, domain.TaxRegimeFlatRate, domain.SocialRegimeStandard, domain.VatFranchise)

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"missing alternative", Request{Target: TargetExpenses, Base: base}, "alternative configuration is required"},
		{"other activity", Request{Target: TargetTurnover, Base: base, Alternative: &bnc}, "share the base activity"},
		{"missing target net", Request{Target: TargetNetIncome, Base: base}, "target net income is required"},
		{"negative target net", Request{Target: TargetNetIncome, Base: base, Constraints: Constraints{TargetNet: amount(-1)}}, "cannot be negative"},
		{"unsupported target", Request{Target: "age", Base: base}, "unsupported target"},
		{"negative turnover", Request{Target: TargetNetIncome, Base: base, Turnover: decimal.NewFromInt(-1), Constraints: Constraints{TargetNet: amount(1)}}, "cannot be negative"},
		{"inverted range", Request{Target: TargetNetIncome, Base: base, Constraints: Constraints{TargetNet: amount(1), MinAmount: amount(10), MaxAmount: amount(5)}}, "min_amount cannot be greater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var beErr *BreakEvenError
			assert.True(t, errors.As(err, &beErr))
			assert.Equal(t, "validate_request", beErr.Operation)
		})
	}
}

func TestParseTarget(t *testing.T) {
	for _, target := range AllTargets {
		got, err := ParseTarget(string(target))
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	got, err := ParseTarget("net")
	require.NoError(t, err)
	assert.Equal(t, TargetNetIncome, got)

	_, err = ParseTarget("age")
	assert.Error(t, err)
}

func TestBreakEvenError(t *testing.T) {
	err := &BreakEvenError{Operation: "solve", Message: "failed", Cause: ErrNoBreakEven}
	assert.Equal(t, "solve: failed: no break-even point in range", err.Error())
	assert.ErrorIs(t, err, ErrNoBreakEven)

	assert.Equal(t, "solve: failed", (&BreakEvenError{Operation: "solve", Message: "failed"}).Error())
}
