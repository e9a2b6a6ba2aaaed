package salarystructure

import (
	"errors"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
)

var ErrNoWorkingDays = errors.New("period has no working days")

// Policy carries the school's standard day and overtime rules.
type Policy struct {
	StandardDays    int
	StandardHours   decimal.Decimal
	OvertimeEnabled bool
	OvertimeRate    decimal.Decimal
}

type ResolveInput struct {
	Structure SalaryStructure
	// PeriodWorkingDays is the full month's working-day count, the proration denominator.
	PeriodWorkingDays int
	// PaidDays is days worked plus approved leave within the employee's own range.
	PaidDays      decimal.Decimal
	OvertimeHours decimal.Decimal
	Policy        Policy
	// EncashDays is the leave balance paid out on relieving; zero otherwise.
	EncashDays decimal.Decimal
}

type Earnings struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	DA              decimal.Decimal
	TA              decimal.Decimal
	Medical         decimal.Decimal
	Special         decimal.Decimal
	Other           decimal.Decimal
	Overtime        decimal.Decimal
	LeaveEncashment decimal.Decimal
	Gross           decimal.Decimal
}

// Resolve expands a structure into the period's earnings. Components are
// computed at full value, then scaled by PaidDays / PeriodWorkingDays except
// fixed allowances marked non-prorated. Overtime and encashment are never prorated.
func Resolve(in ResolveInput) (Earnings, error) {
	if in.PeriodWorkingDays <= 0 {
		return Earnings{}, ErrNoWorkingDays
	}

	full := in.Structure.FullComponents()
	factor := ProrationFactor(in.PaidDays, in.PeriodWorkingDays)

	prorate := func(v decimal.Decimal) decimal.Decimal {
		return money.NonNegative(money.Round(v.Mul(factor)))
	}
	keepOrProrate := func(v decimal.Decimal, nonProrated bool) decimal.Decimal {
		if nonProrated {
			return money.NonNegative(v)
		}
		return prorate(v)
	}

	e := Earnings{
		Basic:   prorate(full.Basic),
		HRA:     prorate(full.HRA),
		DA:      prorate(full.DA),
		TA:      keepOrProrate(full.TA, in.Structure.TransportNonProrated),
		Medical: keepOrProrate(full.Medical, in.Structure.MedicalNonProrated),
		Special: keepOrProrate(full.Special, in.Structure.SpecialNonProrated),
		Other:   keepOrProrate(full.Other, in.Structure.OtherNonProrated),
	}

	e.Overtime = money.Zero
	p := in.Policy
	if p.OvertimeEnabled && in.OvertimeHours.IsPositive() && p.StandardHours.IsPositive() && p.StandardDays > 0 {
		hourly := full.Basic.Div(p.StandardHours).Div(decimal.NewFromInt(int64(p.StandardDays)))
		e.Overtime = money.Round(in.OvertimeHours.Mul(hourly).Mul(p.OvertimeRate))
	}

	e.LeaveEncashment = money.Zero
	if in.EncashDays.IsPositive() && p.StandardDays > 0 {
		daily := full.Basic.Div(decimal.NewFromInt(int64(p.StandardDays)))
		e.LeaveEncashment = money.Round(in.EncashDays.Mul(daily))
	}

	e.Gross = money.Sum(e.Basic, e.HRA, e.DA, e.TA, e.Medical, e.Special, e.Other, e.Overtime, e.LeaveEncashment)
	return e, nil
}

// ProrationFactor is paidDays / workingDays clamped to [0, 1].
func ProrationFactor(paidDays decimal.Decimal, workingDays int) decimal.Decimal {
	if workingDays <= 0 || !paidDays.IsPositive() {
		return decimal.Zero
	}
	f := paidDays.Div(decimal.NewFromInt(int64(workingDays)))
	if f.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return f
}
