package loan

import "github.com/shopspring/decimal"

type CreateLoanRequest struct {
	EmployeeID   string          `json:"employee_id" binding:"required,uuid"`
	LoanType     string          `json:"loan_type" binding:"required,max=40"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure_months" binding:"required"`
	StartDate    string          `json:"start_date" binding:"required"`
	Remarks      string          `json:"remarks"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
}

type LoanResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	LoanType         string `json:"loan_type"`
	Principal        string `json:"principal"`
	InterestRate     string `json:"interest_rate"`
	TotalAmount      string `json:"total_amount"`
	EMIAmount        string `json:"emi_amount"`
	TenureMonths     int    `json:"tenure_months"`
	StartDate        string `json:"start_date"`
	AmountPaid       string `json:"amount_paid"`
	AmountPending    string `json:"amount_pending"`
	InstallmentsPaid int    `json:"installments_paid"`
	Status           string `json:"status"`
	Remarks          string `json:"remarks,omitempty"`
}

type RepaymentResponse struct {
	ID       string  `json:"id"`
	PeriodID string  `json:"period_id"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Amount   string  `json:"amount"`
	Status   string  `json:"status"`
	PaidAt   *string `json:"paid_at,omitempty"`
}
