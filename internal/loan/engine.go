package loan

import (
	"sort"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Terms computes the simple-interest total and the fixed EMI for a new loan.
func Terms(principal, annualRate decimal.Decimal, tenureMonths int) (total, emi decimal.Decimal) {
	tenure := decimal.NewFromInt(int64(tenureMonths))
	interest := principal.Mul(annualRate).Div(money.Hundred).Mul(tenure).Div(money.Twelve)
	total = money.Round(principal.Add(interest))
	emi = money.Round(total.Div(tenure))
	return total, emi
}

// Installment is one loan's proposed deduction for a period.
type Installment struct {
	LoanID uuid.UUID       `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
	Closes bool            `json:"closes"`
}

// Plan is the loan deduction for one employee in one period.
type Plan struct {
	Lines []Installment
	Total decimal.Decimal
}

// PlanInstallment returns what the loan would deduct this period. The last
// installment takes exactly the pending amount so the balance lands on zero.
func PlanInstallment(l EmployeeLoan) Installment {
	if l.Status != StatusActive || !l.AmountPending.IsPositive() {
		return Installment{LoanID: l.ID, Amount: money.Zero}
	}

	final := l.AmountPaid.Add(l.EMIAmount).GreaterThanOrEqual(l.TotalAmount) ||
		l.InstallmentsPaid+1 >= l.TenureMonths
	if final {
		return Installment{LoanID: l.ID, Amount: l.AmountPending, Closes: true}
	}

	amount := money.Min(l.EMIAmount, l.AmountPending)
	return Installment{LoanID: l.ID, Amount: amount, Closes: amount.Equal(l.AmountPending)}
}

// PlanPeriod plans every active loan that started on or before periodEnd.
// It does not modify the loans.
func PlanPeriod(loans []EmployeeLoan, periodEnd time.Time) Plan {
	sorted := make([]EmployeeLoan, len(loans))
	copy(sorted, loans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	plan := Plan{Total: money.Zero}
	for _, l := range sorted {
		if l.StartDate.After(periodEnd) {
			continue
		}
		inst := PlanInstallment(l)
		if !inst.Amount.IsPositive() {
			continue
		}
		plan.Lines = append(plan.Lines, inst)
		plan.Total = plan.Total.Add(inst.Amount)
	}
	return plan
}

// Apply books a deducted amount against the loan, capped at the pending
// balance, and returns the amount actually applied.
func Apply(l *EmployeeLoan, amount decimal.Decimal) decimal.Decimal {
	if l.Status != StatusActive {
		return money.Zero
	}
	applied := money.NonNegative(money.Min(amount, l.AmountPending))

	l.AmountPaid = money.Round(l.AmountPaid.Add(applied))
	l.AmountPending = money.Round(l.AmountPending.Sub(applied))
	l.InstallmentsPaid++
	if !l.AmountPending.IsPositive() {
		l.AmountPending = money.Zero
		l.Status = StatusClosed
	}
	return applied
}
