package salarystructure

import (
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryStructure struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_structure_school_name"`
	Name        string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_salary_structure_school_name"`
	Description string    `gorm:"type:text"`

	BasicSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HRAPercent  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	DAPercent   decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	TransportAllowance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MedicalAllowance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	SpecialAllowance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAllowance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	// Fixed allowances flagged here are paid in full regardless of loss of pay.
	TransportNonProrated bool `gorm:"not null;default:false"`
	MedicalNonProrated   bool `gorm:"not null;default:false"`
	SpecialNonProrated   bool `gorm:"not null;default:false"`
	OtherNonProrated     bool `gorm:"not null;default:false"`

	// Derived from the fields above by Recompute; never written directly.
	GrossSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CTC         decimal.Decimal `gorm:"column:ctc;type:numeric(14,2);not null"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// FullComponents returns each earning component at its full-period value.
func (s SalaryStructure) FullComponents() Components {
	basic := money.Round(s.BasicSalary)
	return Components{
		Basic:   basic,
		HRA:     money.Percent(basic, s.HRAPercent),
		DA:      money.Percent(basic, s.DAPercent),
		TA:      money.Round(s.TransportAllowance),
		Medical: money.Round(s.MedicalAllowance),
		Special: money.Round(s.SpecialAllowance),
		Other:   money.Round(s.OtherAllowance),
	}
}

// Recompute refreshes the cached GrossSalary and CTC. Every write path calls it
// before persisting.
func (s *SalaryStructure) Recompute() {
	s.GrossSalary = s.FullComponents().Total()
	s.CTC = money.Round(s.GrossSalary.Mul(money.Twelve))
}

type Components struct {
	Basic   decimal.Decimal
	HRA     decimal.Decimal
	DA      decimal.Decimal
	TA      decimal.Decimal
	Medical decimal.Decimal
	Special decimal.Decimal
	Other   decimal.Decimal
}

func (c Components) Total() decimal.Decimal {
	return money.Sum(c.Basic, c.HRA, c.DA, c.TA, c.Medical, c.Special, c.Other)
}
