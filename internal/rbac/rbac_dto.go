package rbac

// EnforceRequest asks whether a user may perform action on resource inside a school.
type EnforceRequest struct {
	UserID   string `json:"user_id"`
	SchoolID string `json:"school_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Payroll resources and actions checked by the route guards.
const (
	ResourcePayroll         = "payroll"
	ResourcePayrollConfig   = "payroll_config"
	ResourceSalaryStructure = "salary_structure"
	ResourcePayrollProfile  = "payroll_profile"
	ResourceLoan            = "employee_loan"

	ActionRead    = "read"
	ActionWrite   = "write"
	ActionCompute = "compute"
	ActionSubmit  = "submit"
	ActionApprove = "approve"
	ActionPay     = "pay"
)
