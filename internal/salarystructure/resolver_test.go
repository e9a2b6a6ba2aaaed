package salarystructure_test

import (
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func gradeBStructure() salarystructure.SalaryStructure {
	s := salarystructure.SalaryStructure{
		Name:                 "TGT Grade A",
		BasicSalary:          d("20000"),
		HRAPercent:           d("40"),
		DAPercent:            d("10"),
		TransportAllowance:   d("1600"),
		MedicalAllowance:     d("1250"),
		TransportNonProrated: true,
	}
	s.Recompute()
	return s
}

func standardPolicy() salarystructure.Policy {
	return salarystructure.Policy{
		StandardDays:  26,
		StandardHours: d("8"),
		OvertimeRate:  d("1.5"),
	}
}

func TestSalaryStructure_Recompute(t *testing.T) {
	s := gradeBStructure()

	assert.Equal(t, "32850.00", money.String(s.GrossSalary))
	assert.Equal(t, "394200.00", money.String(s.CTC))

	s.BasicSalary = d("30000")
	s.Recompute()
	assert.Equal(t, "47850.00", money.String(s.GrossSalary))
}

func TestResolve_FullMonth(t *testing.T) {
	e, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("26"),
		Policy:            standardPolicy(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "20000.00", money.String(e.Basic))
	assert.Equal(t, "8000.00", money.String(e.HRA))
	assert.Equal(t, "2000.00", money.String(e.DA))
	assert.Equal(t, "32850.00", money.String(e.Gross))
	assert.True(t, e.Overtime.IsZero())
}

func TestResolve_MidMonthJoinerIsProrated(t *testing.T) {
	e, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("13"),
		Policy:            standardPolicy(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "10000.00", money.String(e.Basic))
	assert.Equal(t, "4000.00", money.String(e.HRA))
	assert.Equal(t, "1000.00", money.String(e.DA))
	assert.Equal(t, "1600.00", money.String(e.TA), "non-prorated allowance stays whole")
	assert.Equal(t, "625.00", money.String(e.Medical))
	assert.Equal(t, "17225.00", money.String(e.Gross))
}

func TestResolve_RoundsHalfUp(t *testing.T) {
	s := salarystructure.SalaryStructure{BasicSalary: d("10000")}
	s.Recompute()

	e, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         s,
		PeriodWorkingDays: 26,
		PaidDays:          d("7"),
		Policy:            standardPolicy(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "2692.31", money.String(e.Basic))
}

func TestResolve_FactorIsClamped(t *testing.T) {
	over, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("30"),
		Policy:            standardPolicy(),
	})
	assert.NoError(t, err)
	assert.Equal(t, "32850.00", money.String(over.Gross))

	none, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("-2"),
		Policy:            standardPolicy(),
	})
	assert.NoError(t, err)
	assert.True(t, none.Basic.IsZero())
	assert.False(t, none.Basic.IsNegative())
	assert.Equal(t, "1600.00", money.String(none.Gross))
}

func TestResolve_OvertimeAndEncashment(t *testing.T) {
	policy := standardPolicy()
	policy.OvertimeEnabled = true

	e, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("26"),
		OvertimeHours:     d("10"),
		EncashDays:        d("10"),
		Policy:            policy,
	})

	assert.NoError(t, err)
	assert.Equal(t, "1442.31", money.String(e.Overtime))
	assert.Equal(t, "7692.31", money.String(e.LeaveEncashment))
	assert.Equal(t, "41984.62", money.String(e.Gross))
}

func TestResolve_OvertimeDisabled(t *testing.T) {
	e, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         gradeBStructure(),
		PeriodWorkingDays: 26,
		PaidDays:          d("26"),
		OvertimeHours:     d("10"),
		Policy:            standardPolicy(),
	})

	assert.NoError(t, err)
	assert.True(t, e.Overtime.IsZero())
}

func TestResolve_NoWorkingDays(t *testing.T) {
	_, err := salarystructure.Resolve(salarystructure.ResolveInput{Structure: gradeBStructure()})

	assert.ErrorIs(t, err, salarystructure.ErrNoWorkingDays)
}
