package payroll

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
)

type amountLine struct {
	code   string
	label  string
	amount decimal.Decimal
}

// AssemblePayslip flattens a computed item into its earnings and deductions.
// Zero lines are left out; gross, total deductions and net are taken from the
// item as stored so the payslip always agrees with the period totals.
func AssemblePayslip(period PayrollPeriod, item PayrollItem) Payslip {
	earnings := []amountLine{
		{"BASIC", "Basic Salary", item.Basic},
		{"HRA", "House Rent Allowance", item.HRA},
		{"DA", "Dearness Allowance", item.DA},
		{"TA", "Transport Allowance", item.TA},
		{"MEDICAL", "Medical Allowance", item.Medical},
		{"SPECIAL", "Special Allowance", item.Special},
		{"OTHER", "Other Allowance", item.Other},
		{"OVERTIME", "Overtime", item.Overtime},
		{"LEAVE_ENCASHMENT", "Leave Encashment", item.LeaveEncashment},
	}
	deductions := []amountLine{
		{"PF", "Provident Fund", item.PFEmployee},
		{"ESI", "Employee State Insurance", item.ESIEmployee},
		{"PROFESSIONAL_TAX", "Professional Tax", item.ProfessionalTax},
		{"TDS", "Income Tax (TDS)", item.TDS},
		{"LOAN", "Loan Repayment", item.LoanDeduction},
	}
	employer := []amountLine{
		{"PF", "Provident Fund (Employer)", item.PFEmployer},
		{"ESI", "Employee State Insurance (Employer)", item.ESIEmployer},
	}

	return Payslip{
		PeriodID:     period.ID.String(),
		ReferenceNo:  period.ReferenceNo,
		Month:        period.Month,
		Year:         period.Year,
		EmployeeID:   item.EmployeeID.String(),
		EmployeeName: item.EmployeeName,
		EmployeeCode: item.EmployeeCode,
		WorkingDays:  item.WorkingDays,
		Attendance: Attendance{
			WorkingDays:   item.WorkingDays,
			DaysWorked:    item.DaysWorked.String(),
			DaysAbsent:    item.DaysAbsent.String(),
			DaysLeave:     item.DaysLeave.String(),
			DaysHoliday:   item.DaysHoliday,
			LateCount:     item.LateCount,
			HalfDayCount:  item.HalfDayCount,
			OvertimeHours: money.String(item.OvertimeHours),
		},
		Earnings:        toLines(earnings),
		Deductions:      toLines(deductions),
		EmployerShare:   toLines(employer),
		GrossSalary:     money.String(item.GrossEarnings),
		TotalDeductions: money.String(item.TotalDeductions),
		NetSalary:       money.String(item.NetSalary),
		PaymentStatus:   item.PaymentStatus,
		Warnings:        item.Warnings,
	}
}

func toLines(in []amountLine) []Line {
	out := make([]Line, 0, len(in))
	for _, l := range in {
		if l.amount.IsZero() {
			continue
		}
		out = append(out, Line{Code: l.code, Label: l.label, Amount: money.String(l.amount)})
	}
	return out
}
