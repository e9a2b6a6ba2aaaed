// Package statutory computes the statutory payroll deductions: Provident Fund,
// Employee State Insurance, Professional Tax and TDS.
//
// Each deduction kind is a Deduction strategy with the same contract, so a new
// kind is added by registering another strategy with the Calculator.
package statutory

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindPF  Kind = "PF"
	KindESI Kind = "ESI"
	KindPT  Kind = "PROFESSIONAL_TAX"
	KindTDS Kind = "TDS"
)

// Input is what every deduction is computed from.
type Input struct {
	Gross decimal.Decimal
	Basic decimal.Decimal
}

// Contribution is one deduction's outcome. Employer is zero for deductions
// borne by the employee alone. Warning is set when the deduction could not be
// computed from the configuration and defaulted to zero.
type Contribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Warning  string
}

type Deduction interface {
	Kind() Kind
	Compute(in Input, rates Rates) Contribution
}

type Warning struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type Result struct {
	Lines    map[Kind]Contribution
	Warnings []Warning
}

func (r Result) Employee(k Kind) decimal.Decimal {
	return r.Lines[k].Employee
}

func (r Result) Employer(k Kind) decimal.Decimal {
	return r.Lines[k].Employer
}

// TotalEmployee is the sum withheld from the employee's pay.
func (r Result) TotalEmployee() decimal.Decimal {
	total := money.Zero
	for _, c := range r.Lines {
		total = total.Add(c.Employee)
	}
	return total
}

type Calculator struct {
	deductions []Deduction
}

// NewCalculator returns a calculator over the given strategies, or over the
// four standard ones when none are given.
func NewCalculator(deductions ...Deduction) *Calculator {
	if len(deductions) == 0 {
		deductions = []Deduction{ProvidentFund{}, StateInsurance{}, ProfessionalTax{}, IncomeTax{}}
	}
	return &Calculator{deductions: deductions}
}

func (c *Calculator) Compute(in Input, rates Rates) Result {
	res := Result{Lines: make(map[Kind]Contribution, len(c.deductions))}
	for _, d := range c.deductions {
		contrib := d.Compute(in, rates)
		contrib.Employee = money.Round(money.NonNegative(contrib.Employee))
		contrib.Employer = money.Round(money.NonNegative(contrib.Employer))
		if contrib.Warning != "" {
			res.Warnings = append(res.Warnings, Warning{Kind: d.Kind(), Message: contrib.Warning})
		}
		res.Lines[d.Kind()] = contrib
	}
	return res
}

func zero() Contribution {
	return Contribution{Employee: money.Zero, Employer: money.Zero}
}
