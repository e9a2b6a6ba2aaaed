package loan_test

import (
	"testing"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newLoan(principal, rate string, tenure int) loan.EmployeeLoan {
	total, emi := loan.Terms(d(principal), d(rate), tenure)
	return loan.EmployeeLoan{
		ID:            uuid.New(),
		Principal:     d(principal),
		InterestRate:  d(rate),
		TotalAmount:   total,
		EMIAmount:     emi,
		TenureMonths:  tenure,
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AmountPaid:    money.Zero,
		AmountPending: total,
		Status:        loan.StatusActive,
	}
}

func TestTerms(t *testing.T) {
	total, emi := loan.Terms(d("12000"), d("0"), 12)
	assert.Equal(t, "12000.00", money.String(total))
	assert.Equal(t, "1000.00", money.String(emi))

	total, emi = loan.Terms(d("10000"), d("12"), 12)
	assert.Equal(t, "11200.00", money.String(total))
	assert.Equal(t, "933.33", money.String(emi))
}

func TestPlanInstallment_DoesNotMutate(t *testing.T) {
	l := newLoan("12000", "0", 12)

	inst := loan.PlanInstallment(l)

	assert.Equal(t, "1000.00", money.String(inst.Amount))
	assert.False(t, inst.Closes)
	assert.True(t, l.AmountPaid.IsZero())
	assert.Equal(t, 0, l.InstallmentsPaid)
}

func TestApply_FinalInstallmentTakesExactPending(t *testing.T) {
	l := newLoan("10000", "12", 12)

	for i := 0; i < 11; i++ {
		inst := loan.PlanInstallment(l)
		assert.Equal(t, "933.33", money.String(inst.Amount))
		loan.Apply(&l, inst.Amount)
	}
	assert.Equal(t, "933.37", money.String(l.AmountPending))

	last := loan.PlanInstallment(l)
	assert.True(t, last.Closes)
	assert.Equal(t, "933.37", money.String(last.Amount))

	loan.Apply(&l, last.Amount)
	assert.Equal(t, loan.StatusClosed, l.Status)
	assert.True(t, l.AmountPending.IsZero())
	assert.Equal(t, "11200.00", money.String(l.AmountPaid))
	assert.Equal(t, 12, l.InstallmentsPaid)
}

func TestApply_NeverOverpays(t *testing.T) {
	l := newLoan("1000", "0", 2)
	l.AmountPaid = d("900")
	l.AmountPending = d("100")

	applied := loan.Apply(&l, d("500"))

	assert.Equal(t, "100.00", money.String(applied))
	assert.False(t, l.AmountPending.IsNegative())
	assert.Equal(t, loan.StatusClosed, l.Status)

	assert.True(t, loan.Apply(&l, d("500")).IsZero())
}

func TestPlanPeriod(t *testing.T) {
	periodEnd := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	active := newLoan("12000", "0", 12)
	closed := newLoan("6000", "0", 6)
	closed.Status = loan.StatusClosed
	future := newLoan("5000", "0", 5)
	future.StartDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	nearlyDone := newLoan("3000", "0", 3)
	nearlyDone.AmountPaid = d("2500")
	nearlyDone.AmountPending = d("500")
	nearlyDone.InstallmentsPaid = 2

	plan := loan.PlanPeriod([]loan.EmployeeLoan{active, closed, future, nearlyDone}, periodEnd)

	assert.Len(t, plan.Lines, 2)
	assert.Equal(t, "1500.00", money.String(plan.Total))
	for _, line := range plan.Lines {
		if line.LoanID == nearlyDone.ID {
			assert.True(t, line.Closes)
			assert.Equal(t, "500.00", money.String(line.Amount))
		}
	}
}
