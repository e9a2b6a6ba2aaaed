package salarystructure

import "github.com/shopspring/decimal"

type StructureRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	HRAPercent  decimal.Decimal `json:"hra_percent"`
	DAPercent   decimal.Decimal `json:"da_percent"`

	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance   decimal.Decimal `json:"special_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`

	TransportNonProrated bool `json:"transport_non_prorated"`
	MedicalNonProrated   bool `json:"medical_non_prorated"`
	SpecialNonProrated   bool `json:"special_non_prorated"`
	OtherNonProrated     bool `json:"other_non_prorated"`

	IsActive *bool `json:"is_active"`
}

type StructureResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	BasicSalary string          `json:"basic_salary"`
	HRAPercent  decimal.Decimal `json:"hra_percent"`
	DAPercent   decimal.Decimal `json:"da_percent"`

	TransportAllowance string `json:"transport_allowance"`
	MedicalAllowance   string `json:"medical_allowance"`
	SpecialAllowance   string `json:"special_allowance"`
	OtherAllowance     string `json:"other_allowance"`

	TransportNonProrated bool `json:"transport_non_prorated"`
	MedicalNonProrated   bool `json:"medical_non_prorated"`
	SpecialNonProrated   bool `json:"special_non_prorated"`
	OtherNonProrated     bool `json:"other_non_prorated"`

	GrossSalary string `json:"gross_salary"`
	CTC         string `json:"ctc"`
	IsActive    bool   `json:"is_active"`
	UpdatedAt   string `json:"updated_at"`
}

type ListFilter struct {
	ActiveOnly bool `form:"active_only"`
}
