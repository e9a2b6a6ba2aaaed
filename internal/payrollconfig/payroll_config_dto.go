package payrollconfig

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/shopspring/decimal"
)

// UpdateConfigRequest is a partial update; nil fields are left unchanged.
type UpdateConfigRequest struct {
	PayCycleDay          *int             `json:"pay_cycle_day" binding:"omitempty,min=1,max=28"`
	PaymentDay           *int             `json:"payment_day" binding:"omitempty,min=1,max=31"`
	StandardWorkingDays  *int             `json:"standard_working_days" binding:"omitempty,min=1,max=31"`
	StandardWorkingHours *decimal.Decimal `json:"standard_working_hours"`
	WeeklyOffDays        *[]int           `json:"weekly_off_days"`
	WorkStartTime        *string          `json:"work_start_time"`
	Timezone             *string          `json:"timezone"`

	PFEnabled         *bool            `json:"pf_enabled"`
	PFEmployeePercent *decimal.Decimal `json:"pf_employee_percent"`
	PFEmployerPercent *decimal.Decimal `json:"pf_employer_percent"`
	PFWageLimit       *decimal.Decimal `json:"pf_wage_limit"`

	ESIEnabled         *bool            `json:"esi_enabled"`
	ESIEmployeePercent *decimal.Decimal `json:"esi_employee_percent"`
	ESIEmployerPercent *decimal.Decimal `json:"esi_employer_percent"`
	ESIWageLimit       *decimal.Decimal `json:"esi_wage_limit"`

	ProfessionalTaxEnabled *bool             `json:"professional_tax_enabled"`
	ProfessionalTaxSlabs   *[]statutory.Slab `json:"professional_tax_slabs"`
	TDSEnabled             *bool             `json:"tds_enabled"`
	TDSSlabs               *[]statutory.Slab `json:"tds_slabs"`

	OvertimeEnabled        *bool            `json:"overtime_enabled"`
	OvertimeRate           *decimal.Decimal `json:"overtime_rate"`
	LeaveEncashmentEnabled *bool            `json:"leave_encashment_enabled"`

	LateGraceMinutes      *int             `json:"late_grace_minutes" binding:"omitempty,min=0,max=240"`
	HalfDayThresholdHours *decimal.Decimal `json:"half_day_threshold_hours"`
}

type ConfigResponse struct {
	ID                   string          `json:"id"`
	SchoolID             string          `json:"school_id"`
	PayCycleDay          int             `json:"pay_cycle_day"`
	PaymentDay           int             `json:"payment_day"`
	StandardWorkingDays  int             `json:"standard_working_days"`
	StandardWorkingHours decimal.Decimal `json:"standard_working_hours"`
	WeeklyOffDays        []int           `json:"weekly_off_days"`
	WorkStartTime        string          `json:"work_start_time,omitempty"`
	Timezone             string          `json:"timezone"`

	PFEnabled         bool            `json:"pf_enabled"`
	PFEmployeePercent decimal.Decimal `json:"pf_employee_percent"`
	PFEmployerPercent decimal.Decimal `json:"pf_employer_percent"`
	PFWageLimit       decimal.Decimal `json:"pf_wage_limit"`

	ESIEnabled         bool            `json:"esi_enabled"`
	ESIEmployeePercent decimal.Decimal `json:"esi_employee_percent"`
	ESIEmployerPercent decimal.Decimal `json:"esi_employer_percent"`
	ESIWageLimit       decimal.Decimal `json:"esi_wage_limit"`

	ProfessionalTaxEnabled bool             `json:"professional_tax_enabled"`
	ProfessionalTaxSlabs   []statutory.Slab `json:"professional_tax_slabs"`
	TDSEnabled             bool             `json:"tds_enabled"`
	TDSSlabs               []statutory.Slab `json:"tds_slabs"`

	OvertimeEnabled        bool            `json:"overtime_enabled"`
	OvertimeRate           decimal.Decimal `json:"overtime_rate"`
	LeaveEncashmentEnabled bool            `json:"leave_encashment_enabled"`

	LateGraceMinutes      int             `json:"late_grace_minutes"`
	HalfDayThresholdHours decimal.Decimal `json:"half_day_threshold_hours"`
	UpdatedAt             string          `json:"updated_at"`
}
