package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELLED"
)

// Leave is an employee leave request as written by the leave module.
type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID   uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_school_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'CASUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	IsHalfDay bool      `gorm:"not null;default:false"`

	Status     string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_school_status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
}

// Balance is the remaining leave bucket of one leave type for an employee.
type Balance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance"`
	LeaveType   string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_leave_balance"`
	Remaining   decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	Encashable  bool            `gorm:"not null;default:false"`
	UpdatedAt   time.Time
}

func (Balance) TableName() string {
	return "leave_balances"
}
