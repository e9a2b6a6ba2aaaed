package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive = "ACTIVE"
	StatusClosed = "CLOSED"

	RepaymentDeducted = "DEDUCTED"
	RepaymentPaid     = "PAID"
)

type EmployeeLoan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProfileID    uuid.UUID       `gorm:"type:uuid;not null"`
	LoanType     string          `gorm:"type:varchar(40);not null"`
	Principal    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InterestRate decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EMIAmount    decimal.Decimal `gorm:"column:emi_amount;type:numeric(14,2);not null"`
	TenureMonths int             `gorm:"not null"`
	StartDate    time.Time       `gorm:"type:date;not null"`

	AmountPaid       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AmountPending    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InstallmentsPaid int             `gorm:"not null;default:0"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	Remarks          string          `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeLoan) TableName() string {
	return "employee_loans"
}

// LoanRepayment is written when a period carrying the installment is approved.
type LoanRepayment struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	LoanID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_loan_repayment_month"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null"`
	PeriodID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month      int             `gorm:"not null;uniqueIndex:uq_loan_repayment_month"`
	Year       int             `gorm:"not null;uniqueIndex:uq_loan_repayment_month"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null"`
	PaidAt     *time.Time
	CreatedAt  time.Time
}

func (LoanRepayment) TableName() string {
	return "loan_repayments"
}
