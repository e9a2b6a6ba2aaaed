package statutory_test

import (
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func baseRates() statutory.Rates {
	return statutory.Rates{
		PFEnabled:          true,
		PFEmployeePercent:  d("12"),
		PFEmployerPercent:  d("12"),
		PFWageLimit:        d("15000"),
		ESIEmployeePercent: d("0.75"),
		ESIEmployerPercent: d("3.25"),
		ESIWageLimit:       d("21000"),
	}
}

func TestProvidentFund_CappedAtWageLimit(t *testing.T) {
	calc := statutory.NewCalculator()

	res := calc.Compute(statutory.Input{Gross: d("30000"), Basic: d("20000")}, baseRates())

	assert.Equal(t, "1800.00", money.String(res.Employee(statutory.KindPF)))
	assert.Equal(t, "1800.00", money.String(res.Employer(statutory.KindPF)))
	assert.Empty(t, res.Warnings)
}

func TestProvidentFund_NeverExceedsCeiling(t *testing.T) {
	calc := statutory.NewCalculator(statutory.ProvidentFund{})
	ceiling := money.Percent(d("15000"), d("12"))

	for _, basic := range []string{"0", "9999.99", "15000", "15000.01", "250000"} {
		res := calc.Compute(statutory.Input{Gross: d(basic), Basic: d(basic)}, baseRates())
		assert.True(t, res.Employee(statutory.KindPF).LessThanOrEqual(ceiling), basic)
	}
}

func TestProvidentFund_BelowLimit(t *testing.T) {
	res := statutory.NewCalculator(statutory.ProvidentFund{}).
		Compute(statutory.Input{Gross: d("12000"), Basic: d("10000.55")}, baseRates())

	assert.Equal(t, "1200.07", money.String(res.Employee(statutory.KindPF)))
}

func TestStateInsurance_EligibilityGate(t *testing.T) {
	rates := baseRates()
	rates.ESIEnabled = true
	calc := statutory.NewCalculator(statutory.StateInsurance{})

	over := calc.Compute(statutory.Input{Gross: d("22000"), Basic: d("15000")}, rates)
	assert.True(t, over.Employee(statutory.KindESI).IsZero())
	assert.True(t, over.Employer(statutory.KindESI).IsZero())

	atLimit := calc.Compute(statutory.Input{Gross: d("21000"), Basic: d("15000")}, rates)
	assert.Equal(t, "157.50", money.String(atLimit.Employee(statutory.KindESI)))
	assert.Equal(t, "682.50", money.String(atLimit.Employer(statutory.KindESI)))
}

func TestDisabledDeductionsAreZero(t *testing.T) {
	rates := statutory.Rates{}

	res := statutory.NewCalculator().Compute(statutory.Input{Gross: d("50000"), Basic: d("25000")}, rates)

	assert.True(t, res.TotalEmployee().IsZero())
	assert.Empty(t, res.Warnings)
	assert.Len(t, res.Lines, 4)
}

func TestProfessionalTax_FlatPerBracket(t *testing.T) {
	rates := statutory.Rates{
		PTEnabled: true,
		PTSlabs: []statutory.Slab{
			{Min: d("0"), Max: dp("15000"), Amount: d("0")},
			{Min: d("15000.01"), Max: dp("20000"), Amount: d("150")},
			{Min: d("20000.01"), Amount: d("200")},
		},
	}
	calc := statutory.NewCalculator(statutory.ProfessionalTax{})

	assert.True(t, calc.Compute(statutory.Input{Gross: d("14000")}, rates).Employee(statutory.KindPT).IsZero())
	assert.Equal(t, "150.00", money.String(calc.Compute(statutory.Input{Gross: d("18000")}, rates).Employee(statutory.KindPT)))
	assert.Equal(t, "200.00", money.String(calc.Compute(statutory.Input{Gross: d("90000")}, rates).Employee(statutory.KindPT)))
}

func TestProfessionalTax_ClosedBracketBoundaries(t *testing.T) {
	rates := statutory.Rates{
		PTEnabled: true,
		PTSlabs: []statutory.Slab{
			{Min: d("0"), Max: dp("10000"), Amount: d("0")},
			{Min: d("10000"), Max: dp("20000"), Amount: d("150")},
			{Min: d("20000"), Amount: d("200")},
		},
	}
	calc := statutory.NewCalculator(statutory.ProfessionalTax{})
	pt := func(gross string) string {
		return money.String(calc.Compute(statutory.Input{Gross: d(gross)}, rates).Employee(statutory.KindPT))
	}

	assert.NoError(t, statutory.ValidateSlabs(rates.PTSlabs))
	// a shared boundary belongs to the lower slab
	assert.Equal(t, "0.00", pt("0"))
	assert.Equal(t, "0.00", pt("10000"))
	assert.Equal(t, "150.00", pt("10000.01"))
	assert.Equal(t, "150.00", pt("20000"))
	assert.Equal(t, "200.00", pt("20000.01"))
}

func TestMissingSlabsWarnAndDefaultToZero(t *testing.T) {
	rates := statutory.Rates{PTEnabled: true, TDSEnabled: true}

	res := statutory.NewCalculator().Compute(statutory.Input{Gross: d("90000"), Basic: d("40000")}, rates)

	assert.True(t, res.Employee(statutory.KindPT).IsZero())
	assert.True(t, res.Employee(statutory.KindTDS).IsZero())
	assert.Len(t, res.Warnings, 2)
}

func TestIncomeTax_AnnualisedMarginalSlabs(t *testing.T) {
	rates := statutory.Rates{
		TDSEnabled: true,
		TDSSlabs: []statutory.Slab{
			{Min: d("0"), Max: dp("300000"), RatePercent: d("0")},
			{Min: d("300000"), Max: dp("700000"), RatePercent: d("5")},
			{Min: d("700000"), Max: dp("1000000"), RatePercent: d("10")},
			{Min: d("1000000"), RatePercent: d("15")},
		},
	}
	calc := statutory.NewCalculator(statutory.IncomeTax{})

	// 50000 x 12 = 600000: 300000 at 5% = 15000 a year
	res := calc.Compute(statutory.Input{Gross: d("50000")}, rates)
	assert.Equal(t, "1250.00", money.String(res.Employee(statutory.KindTDS)))

	// 100000 x 12 = 1200000: 20000 + 30000 + 30000 = 80000 a year
	res = calc.Compute(statutory.Input{Gross: d("100000")}, rates)
	assert.Equal(t, "6666.67", money.String(res.Employee(statutory.KindTDS)))

	res = calc.Compute(statutory.Input{Gross: d("20000")}, rates)
	assert.True(t, res.Employee(statutory.KindTDS).IsZero())
}

type flatWelfareFund struct{}

func (flatWelfareFund) Kind() statutory.Kind { return "LABOUR_WELFARE" }

func (flatWelfareFund) Compute(in statutory.Input, r statutory.Rates) statutory.Contribution {
	return statutory.Contribution{Employee: d("6"), Employer: d("12")}
}

func TestCalculator_CustomDeduction(t *testing.T) {
	calc := statutory.NewCalculator(statutory.ProvidentFund{}, flatWelfareFund{})

	res := calc.Compute(statutory.Input{Gross: d("20000"), Basic: d("10000")}, baseRates())

	assert.Equal(t, "1206.00", money.String(res.TotalEmployee()))
	assert.Equal(t, "12.00", money.String(res.Employer("LABOUR_WELFARE")))
}

func TestValidateSlabs(t *testing.T) {
	assert.NoError(t, statutory.ValidateSlabs(nil))
	assert.NoError(t, statutory.ValidateSlabs([]statutory.Slab{
		{Min: d("0"), Max: dp("100")},
		{Min: d("100"), Max: dp("200")},
		{Min: d("200")},
	}))

	assert.ErrorIs(t, statutory.ValidateSlabs([]statutory.Slab{
		{Min: d("0"), Max: dp("100")},
		{Min: d("50"), Max: dp("200")},
	}), statutory.ErrInvalidSlabs)

	assert.ErrorIs(t, statutory.ValidateSlabs([]statutory.Slab{
		{Min: d("0")},
		{Min: d("100")},
	}), statutory.ErrInvalidSlabs)

	assert.ErrorIs(t, statutory.ValidateSlabs([]statutory.Slab{
		{Min: d("100"), Max: dp("100")},
	}), statutory.ErrInvalidSlabs)
}
