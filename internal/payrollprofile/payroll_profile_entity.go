package payrollprofile

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmployeeTypeTeaching    = "TEACHING"
	EmployeeTypeNonTeaching = "NON_TEACHING"

	EmploymentPermanent = "PERMANENT"
	EmploymentContract  = "CONTRACT"
	EmploymentProbation = "PROBATION"
	EmploymentPartTime  = "PART_TIME"
)

// EmployeePayrollProfile links an employee to the structure they are paid on.
// There is at most one per employee in a school.
type EmployeePayrollProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_profile_employee"`
	EmployeeID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_profile_employee"`
	EmployeeName      string     `gorm:"type:varchar(150);not null"`
	EmployeeCode      string     `gorm:"type:varchar(40)"`
	SalaryStructureID *uuid.UUID `gorm:"type:uuid;index"`

	EmployeeType   string     `gorm:"type:varchar(20);not null"`
	EmploymentType string     `gorm:"type:varchar(20);not null"`
	JoiningDate    time.Time  `gorm:"type:date;not null"`
	RelievingDate  *time.Time `gorm:"type:date"`

	BankName      string `gorm:"type:varchar(120)"`
	AccountNumber string `gorm:"type:varchar(40)"`
	IFSCCode      string `gorm:"column:ifsc_code;type:varchar(20)"`
	PANNumber     string `gorm:"column:pan_number;type:varchar(20)"`
	UANNumber     string `gorm:"column:uan_number;type:varchar(20)"`
	ESINumber     string `gorm:"column:esi_number;type:varchar(20)"`

	IsActive  bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeePayrollProfile) TableName() string {
	return "employee_payroll_profiles"
}

// MaskedAccount hides all but the last four digits of the bank account.
func (p EmployeePayrollProfile) MaskedAccount() string {
	n := len(p.AccountNumber)
	if n <= 4 {
		return p.AccountNumber
	}
	masked := make([]byte, n)
	for i := range masked {
		if i < n-4 {
			masked[i] = 'X'
		} else {
			masked[i] = p.AccountNumber[i]
		}
	}
	return string(masked)
}
