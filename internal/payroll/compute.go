package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/attendance"
	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"
	payrollerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payroll/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollconfig"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile"
	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

const warnNegativeNet = "net salary is negative: deductions exceed gross earnings"

// computeEnv is everything shared by the employees of one computation run.
// It is read-only once built.
type computeEnv struct {
	schoolID          string
	period            PayrollPeriod
	config            payrollconfig.PayrollConfig
	monthRange        attendance.DateRange
	holidays          []attendance.Holiday
	periodWorkingDays int
	structures        map[uuid.UUID]salarystructure.SalaryStructure
}

type employeeOutcome struct {
	profile payrollprofile.EmployeePayrollProfile
	item    PayrollItem
	err     error
}

func (s *service) buildEnv(ctx context.Context, schoolID string, period PayrollPeriod) (*computeEnv, []payrollprofile.EmployeePayrollProfile, error) {
	cfg, err := s.configs.Get(ctx, schoolID)
	if err != nil {
		return nil, nil, fmt.Errorf("load payroll config: %w", err)
	}

	monthRange := attendance.MonthRange(period.Year, time.Month(period.Month))

	holidays, err := s.attendance.ListHolidays(ctx, schoolID, monthRange)
	if err != nil {
		return nil, nil, fmt.Errorf("load holidays: %w", err)
	}

	profiles, err := s.employees.PayableEmployees(ctx, schoolID, monthRange.Start, monthRange.End)
	if err != nil {
		return nil, nil, fmt.Errorf("load employees: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.SalaryStructureID != nil && !seen[*p.SalaryStructureID] {
			seen[*p.SalaryStructureID] = true
			ids = append(ids, p.SalaryStructureID.String())
		}
	}

	structures := make(map[uuid.UUID]salarystructure.SalaryStructure, len(ids))
	if len(ids) > 0 {
		rows, err := s.structures.FindByIDs(ctx, schoolID, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("load salary structures: %w", err)
		}
		for _, row := range rows {
			structures[row.ID] = row
		}
	}

	env := &computeEnv{
		schoolID:          schoolID,
		period:            period,
		config:            cfg,
		monthRange:        monthRange,
		holidays:          holidays,
		periodWorkingDays: attendance.CountWorkingDays(monthRange, holidays, cfg.WeeklyOff()),
		structures:        structures,
	}
	return env, profiles, nil
}

// computeAll fans the employees out over at most s.workers goroutines. A
// failing employee is recorded in its outcome and never stops the others.
func (s *service) computeAll(ctx context.Context, env *computeEnv, profiles []payrollprofile.EmployeePayrollProfile) []employeeOutcome {
	outcomes := make([]employeeOutcome, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range profiles {
		i := i
		g.Go(func() error {
			item, err := s.computeEmployee(gctx, env, profiles[i])
			outcomes[i] = employeeOutcome{profile: profiles[i], item: item, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (s *service) computeEmployee(ctx context.Context, env *computeEnv, p payrollprofile.EmployeePayrollProfile) (PayrollItem, error) {
	if p.SalaryStructureID == nil {
		return PayrollItem{}, payrollerrors.ErrNoSalaryStructure
	}
	structure, ok := env.structures[*p.SalaryStructureID]
	if !ok {
		return PayrollItem{}, payrollerrors.ErrSalaryStructureMissing
	}

	own, ok := env.monthRange.Clamp(p.JoiningDate, p.RelievingDate)
	if !ok {
		return PayrollItem{}, payrollerrors.ErrNotEmployedInPeriod
	}

	employeeID := p.EmployeeID.String()
	cfg := env.config

	records, err := s.attendance.FindByEmployeeInRange(ctx, env.schoolID, employeeID, own)
	if err != nil {
		return PayrollItem{}, fmt.Errorf("load attendance: %w", err)
	}

	leaveDays, err := s.leave.ApprovedLeave(ctx, env.schoolID, employeeID, own.Start, own.End)
	if err != nil {
		return PayrollItem{}, fmt.Errorf("load approved leave: %w", err)
	}
	leaveDates := make([]attendance.LeaveDay, 0, len(leaveDays))
	for _, d := range leaveDays {
		leaveDates = append(leaveDates, attendance.LeaveDay{Date: d.Date, Fraction: d.Fraction})
	}

	summary := attendance.Aggregate(attendance.AggregateInput{
		Range:    own,
		Records:  records,
		Holidays: env.holidays,
		Leave:    leaveDates,
		Policy:   cfg.AttendancePolicy(),
	})

	encashDays := money.Zero
	if cfg.LeaveEncashmentEnabled && p.RelievingDate != nil && env.monthRange.Contains(*p.RelievingDate) {
		encashDays, err = s.leave.EncashableLeaveDays(ctx, env.schoolID, employeeID)
		if err != nil {
			return PayrollItem{}, fmt.Errorf("load leave balance: %w", err)
		}
	}

	earnings, err := salarystructure.Resolve(salarystructure.ResolveInput{
		Structure:         structure,
		PeriodWorkingDays: env.periodWorkingDays,
		PaidDays:          summary.PaidDays(),
		OvertimeHours:     summary.OvertimeHours,
		Policy: salarystructure.Policy{
			StandardDays:    cfg.StandardWorkingDays,
			StandardHours:   cfg.StandardWorkingHours,
			OvertimeEnabled: cfg.OvertimeEnabled,
			OvertimeRate:    cfg.OvertimeRate,
		},
		EncashDays: encashDays,
	})
	if err != nil {
		return PayrollItem{}, err
	}

	stat := s.calculator.Compute(statutory.Input{Gross: earnings.Gross, Basic: earnings.Basic}, cfg.StatutoryRates())

	loans, err := s.loans.FindActiveByEmployee(ctx, env.schoolID, employeeID)
	if err != nil {
		return PayrollItem{}, fmt.Errorf("load loans: %w", err)
	}
	plan := loan.PlanPeriod(loans, env.monthRange.End)

	item := PayrollItem{
		SchoolID:          env.period.SchoolID,
		PeriodID:          env.period.ID,
		EmployeeID:        p.EmployeeID,
		ProfileID:         p.ID,
		SalaryStructureID: p.SalaryStructureID,
		EmployeeName:      p.EmployeeName,
		EmployeeCode:      p.EmployeeCode,
		EmployeeType:      p.EmployeeType,

		WorkingDays:   summary.WorkingDays,
		DaysWorked:    summary.DaysWorked,
		DaysAbsent:    summary.DaysAbsent,
		DaysLeave:     summary.DaysLeave,
		DaysHoliday:   summary.DaysHoliday,
		LateCount:     summary.LateCount,
		HalfDayCount:  summary.HalfDayCount,
		OvertimeHours: summary.OvertimeHours,

		Basic:           earnings.Basic,
		HRA:             earnings.HRA,
		DA:              earnings.DA,
		TA:              earnings.TA,
		Medical:         earnings.Medical,
		Special:         earnings.Special,
		Other:           earnings.Other,
		Overtime:        earnings.Overtime,
		LeaveEncashment: earnings.LeaveEncashment,
		GrossEarnings:   earnings.Gross,

		PFEmployee:      stat.Employee(statutory.KindPF),
		PFEmployer:      stat.Employer(statutory.KindPF),
		ESIEmployee:     stat.Employee(statutory.KindESI),
		ESIEmployer:     stat.Employer(statutory.KindESI),
		ProfessionalTax: stat.Employee(statutory.KindPT),
		TDS:             stat.Employee(statutory.KindTDS),
		LoanDeduction:   plan.Total,

		LoanLines:     datatypes.JSONSlice[loan.Installment](plan.Lines),
		Warnings:      datatypes.JSONSlice[string]{},
		PaymentStatus: PaymentPending,
	}
	if item.LoanLines == nil {
		item.LoanLines = datatypes.JSONSlice[loan.Installment]{}
	}

	item.TotalDeductions = money.Sum(item.PFEmployee, item.ESIEmployee, item.ProfessionalTax, item.TDS, item.LoanDeduction)
	item.NetSalary = item.GrossEarnings.Sub(item.TotalDeductions)

	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("school_id", env.schoolID),
		zap.String("period_id", env.period.ID.String()),
		zap.String("employee_id", employeeID),
	)
	for _, w := range stat.Warnings {
		msg := fmt.Sprintf("%s: %s", w.Kind, w.Message)
		item.Warnings = append(item.Warnings, msg)
		log.Warn("statutory deduction defaulted to zero", zap.String("kind", string(w.Kind)), zap.String("reason", w.Message))
	}
	if item.NetSalary.IsNegative() {
		item.Warnings = append(item.Warnings, warnNegativeNet)
		log.Warn("net salary is negative", zap.String("net_salary", money.String(item.NetSalary)))
	}

	return item, nil
}

// applyTotals recomputes the period aggregates from its items.
func applyTotals(p *PayrollPeriod, items []PayrollItem) {
	gross, deductions, net, employer := money.Zero, money.Zero, money.Zero, money.Zero
	for _, it := range items {
		gross = gross.Add(it.GrossEarnings)
		deductions = deductions.Add(it.TotalDeductions)
		net = net.Add(it.NetSalary)
		employer = employer.Add(it.PFEmployer).Add(it.ESIEmployer)
	}

	p.EmployeeCount = len(items)
	p.TotalGross = gross
	p.TotalDeductions = deductions
	p.TotalNet = net
	p.TotalEmployerShare = employer
}
