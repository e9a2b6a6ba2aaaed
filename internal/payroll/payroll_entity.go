package payroll

import (
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	StatusDraft           = "DRAFT"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusApproved        = "APPROVED"
	StatusPaid            = "PAID"

	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"

	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
	ActionPay     = "PAY"
)

// PayrollPeriod is one school-month of payroll. Status and totals are written
// only by the orchestrator, guarded by Version.
type PayrollPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_period_school_month"`
	Month       int       `gorm:"not null;uniqueIndex:uq_payroll_period_school_month"`
	Year        int       `gorm:"not null;uniqueIndex:uq_payroll_period_school_month"`
	ReferenceNo string    `gorm:"type:varchar(30);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	WorkingDays int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Version     int       `gorm:"not null;default:1"`

	EmployeeCount      int             `gorm:"not null;default:0"`
	TotalGross         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalNet           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalEmployerShare decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedBy        uuid.UUID  `gorm:"type:uuid;not null"`
	SubmittedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy       *uuid.UUID `gorm:"type:uuid"`
	RejectedBy       *uuid.UUID `gorm:"type:uuid"`
	PaidBy           *uuid.UUID `gorm:"type:uuid"`
	RejectionRemarks string     `gorm:"type:text"`

	LastComputedAt *time.Time
	SubmittedAt    *time.Time
	ApprovedAt     *time.Time
	RejectedAt     *time.Time
	PaidAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

// PayrollItem is one employee's computed pay in a period.
type PayrollItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PeriodID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_item_period_employee"`
	EmployeeID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_item_period_employee"`
	ProfileID         uuid.UUID  `gorm:"type:uuid;not null"`
	SalaryStructureID *uuid.UUID `gorm:"type:uuid"`
	EmployeeName      string     `gorm:"type:varchar(150);not null"`
	EmployeeCode      string     `gorm:"type:varchar(40)"`
	EmployeeType      string     `gorm:"type:varchar(20)"`

	WorkingDays   int             `gorm:"not null"`
	DaysWorked    decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	DaysAbsent    decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	DaysLeave     decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	DaysHoliday   int             `gorm:"not null"`
	LateCount     int             `gorm:"not null"`
	HalfDayCount  int             `gorm:"not null"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(6,2);not null"`

	Basic           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HRA             decimal.Decimal `gorm:"column:hra;type:numeric(12,2);not null"`
	DA              decimal.Decimal `gorm:"column:da;type:numeric(12,2);not null"`
	TA              decimal.Decimal `gorm:"column:ta;type:numeric(12,2);not null"`
	Medical         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Special         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Other           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Overtime        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LeaveEncashment decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrossEarnings   decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	PFEmployee      decimal.Decimal `gorm:"column:pf_employee;type:numeric(12,2);not null"`
	PFEmployer      decimal.Decimal `gorm:"column:pf_employer;type:numeric(12,2);not null"`
	ESIEmployee     decimal.Decimal `gorm:"column:esi_employee;type:numeric(12,2);not null"`
	ESIEmployer     decimal.Decimal `gorm:"column:esi_employer;type:numeric(12,2);not null"`
	ProfessionalTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TDS             decimal.Decimal `gorm:"column:tds;type:numeric(12,2);not null"`
	LoanDeduction   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	LoanLines datatypes.JSONSlice[loan.Installment] `gorm:"type:jsonb"`
	Warnings  datatypes.JSONSlice[string]           `gorm:"type:jsonb"`

	PaymentStatus string `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PayrollItem) TableName() string {
	return "payroll_items"
}

// PayrollAuditLog rows are insert-only.
type PayrollAuditLog struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	PeriodID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action        string         `gorm:"type:varchar(20);not null"`
	ActorID       uuid.UUID      `gorm:"type:uuid;not null"`
	Remarks       string         `gorm:"type:text"`
	PreviousState datatypes.JSON `gorm:"type:jsonb"`
	NewState      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (PayrollAuditLog) TableName() string {
	return "payroll_audit_logs"
}
