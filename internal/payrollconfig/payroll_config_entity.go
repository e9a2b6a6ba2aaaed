package payrollconfig

import (
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/attendance"
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PayrollConfig holds one school's payroll rules. There is at most one active
// row per school; it is created with defaults on first read.
type PayrollConfig struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_config_school"`

	PayCycleDay          int                     `gorm:"not null;default:1"`
	PaymentDay           int                     `gorm:"not null;default:1"`
	StandardWorkingDays  int                     `gorm:"not null;default:26"`
	StandardWorkingHours decimal.Decimal         `gorm:"type:numeric(5,2);not null"`
	WeeklyOffDays        datatypes.JSONSlice[int] `gorm:"type:jsonb"`
	WorkStartTime        string                  `gorm:"type:varchar(5)"`
	Timezone             string                  `gorm:"type:varchar(64);not null;default:'Asia/Kolkata'"`

	PFEnabled         bool            `gorm:"not null"`
	PFEmployeePercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	PFEmployerPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	PFWageLimit       decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	ESIEnabled         bool            `gorm:"not null"`
	ESIEmployeePercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ESIEmployerPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ESIWageLimit       decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	ProfessionalTaxEnabled bool                                `gorm:"not null"`
	ProfessionalTaxSlabs   datatypes.JSONSlice[statutory.Slab] `gorm:"type:jsonb"`
	TDSEnabled             bool                                `gorm:"not null"`
	TDSSlabs               datatypes.JSONSlice[statutory.Slab] `gorm:"type:jsonb"`

	OvertimeEnabled        bool            `gorm:"not null"`
	OvertimeRate           decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	LeaveEncashmentEnabled bool            `gorm:"not null"`

	LateGraceMinutes      int             `gorm:"not null;default:15"`
	HalfDayThresholdHours decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollConfig) TableName() string {
	return "payroll_configs"
}

// Default is the configuration a school starts with.
func Default(schoolID uuid.UUID) PayrollConfig {
	return PayrollConfig{
		SchoolID:             schoolID,
		PayCycleDay:          1,
		PaymentDay:           1,
		StandardWorkingDays:  26,
		StandardWorkingHours: decimal.NewFromInt(8),
		WeeklyOffDays:        datatypes.JSONSlice[int]{int(time.Sunday)},
		Timezone:             "Asia/Kolkata",

		PFEnabled:         true,
		PFEmployeePercent: decimal.NewFromInt(12),
		PFEmployerPercent: decimal.NewFromInt(12),
		PFWageLimit:       decimal.NewFromInt(15000),

		ESIEnabled:         false,
		ESIEmployeePercent: decimal.RequireFromString("0.75"),
		ESIEmployerPercent: decimal.RequireFromString("3.25"),
		ESIWageLimit:       decimal.NewFromInt(21000),

		ProfessionalTaxSlabs: datatypes.JSONSlice[statutory.Slab]{},
		TDSSlabs:             datatypes.JSONSlice[statutory.Slab]{},

		OvertimeRate:          decimal.RequireFromString("1.5"),
		LateGraceMinutes:      15,
		HalfDayThresholdHours: decimal.NewFromInt(4),
		IsActive:              true,
	}
}

func (c PayrollConfig) StatutoryRates() statutory.Rates {
	return statutory.Rates{
		PFEnabled:          c.PFEnabled,
		PFEmployeePercent:  c.PFEmployeePercent,
		PFEmployerPercent:  c.PFEmployerPercent,
		PFWageLimit:        c.PFWageLimit,
		ESIEnabled:         c.ESIEnabled,
		ESIEmployeePercent: c.ESIEmployeePercent,
		ESIEmployerPercent: c.ESIEmployerPercent,
		ESIWageLimit:       c.ESIWageLimit,
		PTEnabled:          c.ProfessionalTaxEnabled,
		PTSlabs:            c.ProfessionalTaxSlabs,
		TDSEnabled:         c.TDSEnabled,
		TDSSlabs:           c.TDSSlabs,
	}
}

func (c PayrollConfig) WeeklyOff() []time.Weekday {
	days := make([]time.Weekday, 0, len(c.WeeklyOffDays))
	for _, d := range c.WeeklyOffDays {
		days = append(days, time.Weekday(d))
	}
	return days
}

func (c PayrollConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c PayrollConfig) AttendancePolicy() attendance.Policy {
	return attendance.Policy{
		WeeklyOffDays:    c.WeeklyOff(),
		HalfDayThreshold: c.HalfDayThresholdHours,
		StandardHours:    c.StandardWorkingHours,
		LateGraceMinutes: c.LateGraceMinutes,
		WorkStart:        c.WorkStartTime,
		Location:         c.Location(),
	}
}
