package payrollprofile

type UpsertProfileRequest struct {
	EmployeeName      string  `json:"employee_name" binding:"required,max=150"`
	EmployeeCode      string  `json:"employee_code" binding:"max=40"`
	SalaryStructureID *string `json:"salary_structure_id"`
	EmployeeType      string  `json:"employee_type" binding:"required"`
	EmploymentType    string  `json:"employment_type" binding:"required"`
	JoiningDate       string  `json:"joining_date" binding:"required"`
	RelievingDate     *string `json:"relieving_date"`

	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	PANNumber     string `json:"pan_number"`
	UANNumber     string `json:"uan_number"`
	ESINumber     string `json:"esi_number"`
}

type DeactivateProfileRequest struct {
	RelievingDate string `json:"relieving_date" binding:"required"`
}

type ListFilter struct {
	EmployeeType string `form:"employee_type"`
	ActiveOnly   bool   `form:"active_only"`
}

type ProfileResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	EmployeeCode      string  `json:"employee_code,omitempty"`
	SalaryStructureID *string `json:"salary_structure_id,omitempty"`
	EmployeeType      string  `json:"employee_type"`
	EmploymentType    string  `json:"employment_type"`
	JoiningDate       string  `json:"joining_date"`
	RelievingDate     *string `json:"relieving_date,omitempty"`
	BankName          string  `json:"bank_name,omitempty"`
	AccountNumber     string  `json:"account_number,omitempty"`
	IFSCCode          string  `json:"ifsc_code,omitempty"`
	PANNumber         string  `json:"pan_number,omitempty"`
	IsActive          bool    `json:"is_active"`
}
