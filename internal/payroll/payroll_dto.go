package payroll

type CreatePeriodRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type RejectPeriodRequest struct {
	Remarks string `json:"remarks" binding:"required,max=1000"`
}

type ComputeOptions struct {
	Async bool `form:"async"`
}

type PeriodFilter struct {
	Year     int    `form:"year"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PeriodResponse struct {
	ID                 string  `json:"id"`
	ReferenceNo        string  `json:"reference_no"`
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	WorkingDays        int     `json:"working_days"`
	Status             string  `json:"status"`
	Version            int     `json:"version"`
	EmployeeCount      int     `json:"employee_count"`
	TotalGross         string  `json:"total_gross"`
	TotalDeductions    string  `json:"total_deductions"`
	TotalNet           string  `json:"total_net"`
	TotalEmployerShare string  `json:"total_employer_share"`
	LastComputedAt     *string `json:"last_computed_at,omitempty"`
	SubmittedAt        *string `json:"submitted_at,omitempty"`
	ApprovedBy         *string `json:"approved_by,omitempty"`
	ApprovedAt         *string `json:"approved_at,omitempty"`
	RejectionRemarks   string  `json:"rejection_remarks,omitempty"`
	PaidAt             *string `json:"paid_at,omitempty"`
}

// EmployeeError is one employee skipped by a computation run.
type EmployeeError struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Reason       string `json:"reason"`
}

// EmployeeWarning is a non-fatal issue in one employee's computation.
type EmployeeWarning struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type ComputeResult struct {
	PeriodID      string            `json:"period_id"`
	Queued        bool              `json:"queued"`
	ItemsComputed int               `json:"items_computed"`
	Errors        []EmployeeError   `json:"errors"`
	Warnings      []EmployeeWarning `json:"warnings"`
	Period        *PeriodResponse   `json:"period,omitempty"`
}

type ItemResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name"`
	EmployeeCode    string   `json:"employee_code,omitempty"`
	WorkingDays     int      `json:"working_days"`
	DaysWorked      string   `json:"days_worked"`
	DaysAbsent      string   `json:"days_absent"`
	DaysLeave       string   `json:"days_leave"`
	GrossEarnings   string   `json:"gross_earnings"`
	TotalDeductions string   `json:"total_deductions"`
	NetSalary       string   `json:"net_salary"`
	PaymentStatus   string   `json:"payment_status"`
	Warnings        []string `json:"warnings,omitempty"`
}

type AuditLogResponse struct {
	ID            string         `json:"id"`
	Action        string         `json:"action"`
	ActorID       string         `json:"actor_id"`
	Remarks       string         `json:"remarks,omitempty"`
	PreviousState map[string]any `json:"previous_state"`
	NewState      map[string]any `json:"new_state"`
	CreatedAt     string         `json:"created_at"`
}

// Line is one labelled amount on a payslip.
type Line struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type Attendance struct {
	WorkingDays   int    `json:"working_days"`
	DaysWorked    string `json:"days_worked"`
	DaysAbsent    string `json:"days_absent"`
	DaysLeave     string `json:"days_leave"`
	DaysHoliday   int    `json:"days_holiday"`
	LateCount     int    `json:"late_count"`
	HalfDayCount  int    `json:"half_day_count"`
	OvertimeHours string `json:"overtime_hours"`
}

// Payslip is the flattened breakdown handed to the rendering service.
type Payslip struct {
	PeriodID        string     `json:"period_id"`
	ReferenceNo     string     `json:"reference_no"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	EmployeeCode    string     `json:"employee_code,omitempty"`
	WorkingDays     int        `json:"working_days"`
	Attendance      Attendance `json:"attendance"`
	Earnings        []Line     `json:"earnings"`
	Deductions      []Line     `json:"deductions"`
	EmployerShare   []Line     `json:"employer_contributions"`
	GrossSalary     string     `json:"gross_salary"`
	TotalDeductions string     `json:"total_deductions"`
	NetSalary       string     `json:"net_salary"`
	PaymentStatus   string     `json:"payment_status"`
	Warnings        []string   `json:"warnings,omitempty"`
}
