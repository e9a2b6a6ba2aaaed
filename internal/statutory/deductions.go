package statutory

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
)

// ProvidentFund contributes a percentage of basic, capped at the wage limit.
// Basic above the limit is never contributed from.
type ProvidentFund struct{}

func (ProvidentFund) Kind() Kind { return KindPF }

func (ProvidentFund) Compute(in Input, r Rates) Contribution {
	if !r.PFEnabled {
		return zero()
	}
	base := in.Basic
	if r.PFWageLimit.IsPositive() {
		base = money.Min(base, r.PFWageLimit)
	}
	return Contribution{
		Employee: money.Percent(base, r.PFEmployeePercent),
		Employer: money.Percent(base, r.PFEmployerPercent),
	}
}

// StateInsurance applies only while gross is within the wage limit. Above it
// the employee is ineligible for the whole period.
type StateInsurance struct{}

func (StateInsurance) Kind() Kind { return KindESI }

func (StateInsurance) Compute(in Input, r Rates) Contribution {
	if !r.ESIEnabled || in.Gross.GreaterThan(r.ESIWageLimit) {
		return zero()
	}
	return Contribution{
		Employee: money.Percent(in.Gross, r.ESIEmployeePercent),
		Employer: money.Percent(in.Gross, r.ESIEmployerPercent),
	}
}

// ProfessionalTax charges the flat amount of the slab gross falls in.
type ProfessionalTax struct{}

func (ProfessionalTax) Kind() Kind { return KindPT }

func (ProfessionalTax) Compute(in Input, r Rates) Contribution {
	if !r.PTEnabled {
		return zero()
	}
	if len(r.PTSlabs) == 0 {
		c := zero()
		c.Warning = "professional tax is enabled but no slabs are configured"
		return c
	}
	for _, s := range r.PTSlabs {
		if s.contains(in.Gross) {
			return Contribution{Employee: s.Amount, Employer: money.Zero}
		}
	}
	return zero()
}

// IncomeTax withholds one twelfth of the tax on gross annualised over twelve
// months. There is no year-to-date reconciliation; each month stands alone.
type IncomeTax struct{}

func (IncomeTax) Kind() Kind { return KindTDS }

func (IncomeTax) Compute(in Input, r Rates) Contribution {
	if !r.TDSEnabled {
		return zero()
	}
	if len(r.TDSSlabs) == 0 {
		c := zero()
		c.Warning = "TDS is enabled but no slabs are configured"
		return c
	}

	annual := in.Gross.Mul(money.Twelve)
	tax := decimal.Zero
	for _, s := range r.TDSSlabs {
		if !annual.GreaterThan(s.Min) {
			break
		}
		upper := annual
		if s.Max != nil {
			upper = money.Min(annual, *s.Max)
		}
		tax = tax.Add(upper.Sub(s.Min).Mul(s.RatePercent).Div(money.Hundred))
	}

	return Contribution{Employee: money.Round(tax.Div(money.Twelve)), Employer: money.Zero}
}
