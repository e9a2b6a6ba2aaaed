package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/attendance"
	"github.com/KinzixInfotech/edutemp-sub017/internal/events"
	"github.com/KinzixInfotech/edutemp-sub017/internal/leave"
	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"
	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka"
	payrollerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payroll/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollconfig"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile"
	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/counter"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	aggregateType  = "payroll_period"
	defaultWorkers = 8
)

// ConfigProvider is satisfied by payrollconfig.Service.
type ConfigProvider interface {
	Get(ctx context.Context, schoolID string) (payrollconfig.PayrollConfig, error)
}

// EmployeeDirectory is satisfied by payrollprofile.Service.
type EmployeeDirectory interface {
	PayableEmployees(ctx context.Context, schoolID string, from, to time.Time) ([]payrollprofile.EmployeePayrollProfile, error)
}

// StructureStore is satisfied by salarystructure.Repository.
type StructureStore interface {
	FindByIDs(ctx context.Context, schoolID string, ids []string) ([]salarystructure.SalaryStructure, error)
}

// AttendanceStore is satisfied by attendance.Repository.
type AttendanceStore interface {
	FindByEmployeeInRange(ctx context.Context, schoolID, employeeID string, rng attendance.DateRange) ([]attendance.Attendance, error)
	ListHolidays(ctx context.Context, schoolID string, rng attendance.DateRange) ([]attendance.Holiday, error)
}

type Dependencies struct {
	DB         *sql.DB
	Repo       Repository
	Configs    ConfigProvider
	Employees  EmployeeDirectory
	Structures StructureStore
	Attendance AttendanceStore
	Leave      leave.Service
	Loans      loan.Repository
	Counter    counter.Repository
	Outbox     kafka.OutboxRepository
	Calculator *statutory.Calculator
	// Workers caps concurrent per-employee computations; 8 when zero.
	Workers int
}

type Service interface {
	CreateOrGetPeriod(ctx context.Context, schoolID, actorID string, req CreatePeriodRequest) (PeriodResponse, bool, error)
	ComputePeriod(ctx context.Context, schoolID, periodID string) (ComputeResult, error)
	RequestCompute(ctx context.Context, schoolID, periodID, actorID string) (ComputeResult, error)
	Submit(ctx context.Context, schoolID, periodID, actorID string) (PeriodResponse, error)
	Approve(ctx context.Context, schoolID, periodID, approverID string) (PeriodResponse, error)
	Reject(ctx context.Context, schoolID, periodID, approverID, remarks string) (PeriodResponse, error)
	MarkPaid(ctx context.Context, schoolID, periodID, actorID string) (PeriodResponse, error)

	ListPeriods(ctx context.Context, schoolID string, filter PeriodFilter) ([]PeriodResponse, int64, error)
	GetPeriod(ctx context.Context, schoolID, periodID string) (PeriodResponse, error)
	ListItems(ctx context.Context, schoolID, periodID string) ([]ItemResponse, error)
	ListAuditLogs(ctx context.Context, schoolID, periodID string) ([]AuditLogResponse, error)
	GetPayslip(ctx context.Context, schoolID, periodID, employeeID string) (Payslip, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	configs    ConfigProvider
	employees  EmployeeDirectory
	structures StructureStore
	attendance AttendanceStore
	leave      leave.Service
	loans      loan.Repository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	calculator *statutory.Calculator
	workers    int
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	workers := deps.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	calc := deps.Calculator
	if calc == nil {
		calc = statutory.NewCalculator()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		configs:    deps.Configs,
		employees:  deps.Employees,
		structures: deps.Structures,
		attendance: deps.Attendance,
		leave:      deps.Leave,
		loans:      deps.Loans,
		counter:    deps.Counter,
		outbox:     deps.Outbox,
		calculator: calc,
		workers:    workers,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) CreateOrGetPeriod(ctx context.Context, schoolID, actorID string, req CreatePeriodRequest) (PeriodResponse, bool, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return PeriodResponse{}, false, payrollerrors.ErrInvalidSchoolID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, false, payrollerrors.ErrInvalidActorID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return PeriodResponse{}, false, payrollerrors.ErrInvalidMonthYear
	}

	existing, err := s.repo.FindPeriodByMonth(ctx, schoolID, req.Month, req.Year)
	if err == nil {
		return mapPeriodResponse(*existing), false, nil
	}
	if !isNotFound(err) {
		return PeriodResponse{}, false, err
	}

	period, err := s.createPeriod(ctx, schoolUUID, actorUUID, req)
	if isUniqueViolation(err) {
		// Lost the race to a concurrent request for the same month.
		existing, err := s.repo.FindPeriodByMonth(ctx, schoolID, req.Month, req.Year)
		if err != nil {
			return PeriodResponse{}, false, mapRepositoryError(err)
		}
		return mapPeriodResponse(*existing), false, nil
	}
	if err != nil {
		return PeriodResponse{}, false, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll period created",
		zap.String("school_id", schoolID),
		zap.String("period_id", period.ID.String()),
		zap.String("reference_no", period.ReferenceNo),
	)

	return mapPeriodResponse(*period), true, nil
}

func (s *service) createPeriod(ctx context.Context, schoolID, actorID uuid.UUID, req CreatePeriodRequest) (*PayrollPeriod, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, schoolID.String(), counter.TypePayrollPeriod)
	if err != nil {
		return nil, err
	}

	rng := attendance.MonthRange(req.Year, time.Month(req.Month))
	period := &PayrollPeriod{
		ID:                 uuid.New(),
		SchoolID:           schoolID,
		Month:              req.Month,
		Year:               req.Year,
		ReferenceNo:        counter.PeriodReference(req.Year, req.Month, seq),
		StartDate:          rng.Start,
		EndDate:            rng.End,
		Status:             StatusDraft,
		Version:            1,
		TotalGross:         money.Zero,
		TotalDeductions:    money.Zero,
		TotalNet:           money.Zero,
		TotalEmployerShare: money.Zero,
		CreatedBy:          actorID,
	}

	if err := s.repo.WithTx(tx).CreatePeriod(ctx, period); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return period, nil
}

// ComputePeriod computes every payable employee and replaces the period's
// items and totals in one transaction. Employees that fail are skipped and
// reported; rerunning with the same inputs stores identical items.
func (s *service) ComputePeriod(ctx context.Context, schoolID, periodID string) (ComputeResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	period, err := s.repo.FindPeriodByID(ctx, schoolID, periodID)
	if err != nil {
		return ComputeResult{}, mapRepositoryError(err)
	}
	if period.Status != StatusDraft {
		return ComputeResult{}, payrollerrors.ErrRecomputeOnlyDraft
	}

	env, profiles, err := s.buildEnv(ctx, schoolID, *period)
	if err != nil {
		log.Error("prepare payroll computation failed",
			zap.String("school_id", schoolID),
			zap.String("period_id", periodID),
			zap.Error(err),
		)
		return ComputeResult{}, err
	}

	outcomes := s.computeAll(ctx, env, profiles)
	if err := ctx.Err(); err != nil {
		return ComputeResult{}, err
	}

	result := ComputeResult{
		PeriodID: periodID,
		Errors:   []EmployeeError{},
		Warnings: []EmployeeWarning{},
	}
	items := make([]PayrollItem, 0, len(outcomes))
	for _, o := range outcomes {
		employeeID := o.profile.EmployeeID.String()
		if o.err != nil {
			log.Warn("employee skipped in payroll computation",
				zap.String("school_id", schoolID),
				zap.String("period_id", periodID),
				zap.String("employee_id", employeeID),
				zap.Error(o.err),
			)
			result.Errors = append(result.Errors, EmployeeError{
				EmployeeID:   employeeID,
				EmployeeName: o.profile.EmployeeName,
				Reason:       o.err.Error(),
			})
			continue
		}
		for _, w := range o.item.Warnings {
			result.Warnings = append(result.Warnings, EmployeeWarning{EmployeeID: employeeID, Message: w})
		}
		items = append(items, o.item)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComputeResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.ListItems(ctx, schoolID, periodID)
	if err != nil {
		return ComputeResult{}, err
	}
	existingIDs := make(map[uuid.UUID]uuid.UUID, len(existing))
	for _, it := range existing {
		existingIDs[it.EmployeeID] = it.ID
	}

	keep := make([]uuid.UUID, 0, len(items))
	for i := range items {
		if id, ok := existingIDs[items[i].EmployeeID]; ok {
			items[i].ID = id
		} else {
			items[i].ID = uuid.New()
		}
		keep = append(keep, items[i].EmployeeID)
	}

	if err := qtx.UpsertItems(ctx, items); err != nil {
		return ComputeResult{}, err
	}
	if err := qtx.DeleteItemsExcept(ctx, periodID, keep); err != nil {
		return ComputeResult{}, err
	}

	now := s.now()
	applyTotals(period, items)
	period.WorkingDays = env.periodWorkingDays
	period.LastComputedAt = &now

	affected, err := qtx.UpdatePeriodGuarded(ctx, period, StatusDraft)
	if err != nil {
		return ComputeResult{}, err
	}
	if affected == 0 {
		return ComputeResult{}, payrollerrors.ErrConcurrentModification
	}

	if err := tx.Commit(); err != nil {
		return ComputeResult{}, err
	}

	log.Info("payroll period computed",
		zap.String("school_id", schoolID),
		zap.String("period_id", periodID),
		zap.Int("items_computed", len(items)),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)),
		zap.String("total_net", money.String(period.TotalNet)),
	)

	resp := mapPeriodResponse(*period)
	result.ItemsComputed = len(items)
	result.Period = &resp
	return result, nil
}

// RequestCompute queues a computation for the consumer instead of running it inline.
func (s *service) RequestCompute(ctx context.Context, schoolID, periodID, actorID string) (ComputeResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComputeResult{}, err
	}
	defer tx.Rollback()

	period, err := s.repo.WithTx(tx).FindPeriodByID(ctx, schoolID, periodID)
	if err != nil {
		return ComputeResult{}, mapRepositoryError(err)
	}
	if period.Status != StatusDraft {
		return ComputeResult{}, payrollerrors.ErrRecomputeOnlyDraft
	}

	evt := events.PayrollComputeRequestedEvent{
		EventType:   events.PayrollComputeRequestedTopic,
		PeriodID:    periodID,
		SchoolID:    schoolID,
		RequestedBy: actorID,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publish(ctx, tx, *period, events.PayrollComputeRequestedTopic, evt); err != nil {
		return ComputeResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ComputeResult{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll computation queued",
		zap.String("school_id", schoolID),
		zap.String("period_id", periodID),
	)

	return ComputeResult{
		PeriodID: periodID,
		Queued:   true,
		Errors:   []EmployeeError{},
		Warnings: []EmployeeWarning{},
	}, nil
}

func (s *service) Submit(ctx context.Context, schoolID, periodID, actorID string) (PeriodResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindPeriodByIDForUpdate(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	if period.Status != StatusDraft {
		return PeriodResponse{}, payrollerrors.ErrInvalidStateTransition
	}

	count, err := qtx.CountItems(ctx, periodID)
	if err != nil {
		return PeriodResponse{}, err
	}
	if count == 0 {
		return PeriodResponse{}, payrollerrors.ErrNoItems
	}

	now := s.now()
	period.Status = StatusPendingApproval
	period.SubmittedBy = &actorUUID
	period.SubmittedAt = &now

	if err := s.updateGuarded(ctx, qtx, period, StatusDraft); err != nil {
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logTransition(ctx, *period, StatusDraft, actorID)
	return mapPeriodResponse(*period), nil
}

// Approve moves a pending period to APPROVED and books every loan
// installment carried by its items. All of it commits or none of it does.
func (s *service) Approve(ctx context.Context, schoolID, periodID, approverID string) (PeriodResponse, error) {
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindPeriodByIDForUpdate(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	if period.Status != StatusPendingApproval {
		return PeriodResponse{}, payrollerrors.ErrInvalidStateTransition
	}
	previous := snapshot(*period)

	items, err := qtx.ListItems(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, err
	}

	advanced, err := s.advanceLoans(ctx, tx, *period, items)
	if err != nil {
		return PeriodResponse{}, err
	}

	now := s.now()
	period.Status = StatusApproved
	period.ApprovedBy = &approverUUID
	period.ApprovedAt = &now

	if err := s.updateGuarded(ctx, qtx, period, StatusPendingApproval); err != nil {
		return PeriodResponse{}, err
	}

	next := snapshot(*period)
	next["loans_advanced"] = advanced
	if err := s.audit(ctx, qtx, *period, ActionApprove, approverUUID, "", previous, next); err != nil {
		return PeriodResponse{}, err
	}
	if err := s.publish(ctx, tx, *period, events.PayrollPeriodApprovedTopic, s.periodEvent(*period, events.PayrollPeriodApprovedTopic, approverID, "")); err != nil {
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logTransition(ctx, *period, StatusPendingApproval, approverID, zap.Int("loans_advanced", advanced))
	return mapPeriodResponse(*period), nil
}

// advanceLoans books each item's planned installments against the locked
// loans and records one repayment per loan and month. Every line must still
// apply in full: a loan that is gone, closed or holds less than the planned
// amount fails the approval with ErrLoanLedgerChanged before anything is
// written. A month already repaid is skipped so the loan is never charged twice.
func (s *service) advanceLoans(ctx context.Context, tx *sql.Tx, period PayrollPeriod, items []PayrollItem) (int, error) {
	var loanIDs []string
	for _, it := range items {
		for _, line := range it.LoanLines {
			loanIDs = append(loanIDs, line.LoanID.String())
		}
	}
	if len(loanIDs) == 0 {
		return 0, nil
	}

	ltx := s.loans.WithTx(tx)
	schoolID := period.SchoolID.String()

	locked, err := ltx.FindByIDsForUpdate(ctx, schoolID, loanIDs)
	if err != nil {
		return 0, err
	}
	loans := make(map[uuid.UUID]loan.EmployeeLoan, len(locked))
	for _, l := range locked {
		loans[l.ID] = l
	}

	type booking struct {
		next      loan.EmployeeLoan
		repayment loan.LoanRepayment
	}

	log := contextutil.GetLogger(ctx, s.logger)
	var bookings []booking
	for _, it := range items {
		for _, line := range it.LoanLines {
			l, ok := loans[line.LoanID]
			next := l
			applied := money.Zero
			if ok {
				applied = loan.Apply(&next, line.Amount)
			}
			if !applied.Equal(line.Amount) {
				log.Warn("loan no longer matches computed deduction",
					zap.String("period_id", period.ID.String()),
					zap.String("employee_id", it.EmployeeID.String()),
					zap.String("loan_id", line.LoanID.String()),
					zap.String("planned", money.String(line.Amount)),
					zap.String("applicable", money.String(applied)),
				)
				return 0, payrollerrors.ErrLoanLedgerChanged
			}

			bookings = append(bookings, booking{
				next: next,
				repayment: loan.LoanRepayment{
					ID:         uuid.New(),
					SchoolID:   period.SchoolID,
					LoanID:     l.ID,
					EmployeeID: it.EmployeeID,
					PeriodID:   period.ID,
					Month:      period.Month,
					Year:       period.Year,
					Amount:     applied,
					Status:     loan.RepaymentDeducted,
				},
			})
		}
	}

	advanced := 0
	for i := range bookings {
		b := &bookings[i]
		inserted, err := ltx.CreateRepayment(ctx, &b.repayment)
		if err != nil {
			return 0, err
		}
		if !inserted {
			continue
		}
		if err := ltx.Update(ctx, &b.next); err != nil {
			return 0, err
		}
		advanced++
	}
	return advanced, nil
}

// Reject returns a pending period to DRAFT. Loans are not touched.
func (s *service) Reject(ctx context.Context, schoolID, periodID, approverID, remarks string) (PeriodResponse, error) {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return PeriodResponse{}, payrollerrors.ErrRemarksRequired
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindPeriodByIDForUpdate(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	if period.Status != StatusPendingApproval {
		return PeriodResponse{}, payrollerrors.ErrInvalidStateTransition
	}
	previous := snapshot(*period)

	now := s.now()
	period.Status = StatusDraft
	period.RejectedBy = &approverUUID
	period.RejectedAt = &now
	period.RejectionRemarks = remarks

	if err := s.updateGuarded(ctx, qtx, period, StatusPendingApproval); err != nil {
		return PeriodResponse{}, err
	}
	if err := s.audit(ctx, qtx, *period, ActionReject, approverUUID, remarks, previous, snapshot(*period)); err != nil {
		return PeriodResponse{}, err
	}
	if err := s.publish(ctx, tx, *period, events.PayrollPeriodRejectedTopic, s.periodEvent(*period, events.PayrollPeriodRejectedTopic, approverID, remarks)); err != nil {
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logTransition(ctx, *period, StatusPendingApproval, approverID)
	return mapPeriodResponse(*period), nil
}

// MarkPaid records disbursement of an approved period.
func (s *service) MarkPaid(ctx context.Context, schoolID, periodID, actorID string) (PeriodResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindPeriodByIDForUpdate(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	if period.Status != StatusApproved {
		return PeriodResponse{}, payrollerrors.ErrInvalidStateTransition
	}
	previous := snapshot(*period)

	now := s.now()
	if err := qtx.MarkItemsPaid(ctx, periodID, now); err != nil {
		return PeriodResponse{}, err
	}
	repaid, err := s.loans.WithTx(tx).MarkRepaymentsPaid(ctx, schoolID, periodID, now)
	if err != nil {
		return PeriodResponse{}, err
	}

	period.Status = StatusPaid
	period.PaidBy = &actorUUID
	period.PaidAt = &now

	if err := s.updateGuarded(ctx, qtx, period, StatusApproved); err != nil {
		return PeriodResponse{}, err
	}

	next := snapshot(*period)
	next["repayments_paid"] = repaid
	if err := s.audit(ctx, qtx, *period, ActionPay, actorUUID, "", previous, next); err != nil {
		return PeriodResponse{}, err
	}
	if err := s.publish(ctx, tx, *period, events.PayrollPeriodPaidTopic, s.periodEvent(*period, events.PayrollPeriodPaidTopic, actorID, "")); err != nil {
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logTransition(ctx, *period, StatusApproved, actorID)
	return mapPeriodResponse(*period), nil
}

func (s *service) ListPeriods(ctx context.Context, schoolID string, filter PeriodFilter) ([]PeriodResponse, int64, error) {
	filter.Normalize()
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, 0, payrollerrors.ErrInvalidStatusFilter
	}

	rows, total, err := s.repo.ListPeriods(ctx, schoolID, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]PeriodResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapPeriodResponse(row)
	}
	return resp, total, nil
}

func (s *service) GetPeriod(ctx context.Context, schoolID, periodID string) (PeriodResponse, error) {
	period, err := s.repo.FindPeriodByID(ctx, schoolID, periodID)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	return mapPeriodResponse(*period), nil
}

func (s *service) ListItems(ctx context.Context, schoolID, periodID string) ([]ItemResponse, error) {
	if _, err := s.repo.FindPeriodByID(ctx, schoolID, periodID); err != nil {
		return nil, mapRepositoryError(err)
	}

	items, err := s.repo.ListItems(ctx, schoolID, periodID)
	if err != nil {
		return nil, err
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = mapItemResponse(it)
	}
	return resp, nil
}

func (s *service) ListAuditLogs(ctx context.Context, schoolID, periodID string) ([]AuditLogResponse, error) {
	if _, err := s.repo.FindPeriodByID(ctx, schoolID, periodID); err != nil {
		return nil, mapRepositoryError(err)
	}

	logs, err := s.repo.ListAuditLogs(ctx, schoolID, periodID)
	if err != nil {
		return nil, err
	}

	resp := make([]AuditLogResponse, len(logs))
	for i, l := range logs {
		resp[i] = mapAuditLogResponse(l)
	}
	return resp, nil
}

func (s *service) GetPayslip(ctx context.Context, schoolID, periodID, employeeID string) (Payslip, error) {
	period, err := s.repo.FindPeriodByID(ctx, schoolID, periodID)
	if err != nil {
		return Payslip{}, mapRepositoryError(err)
	}

	item, err := s.repo.FindItem(ctx, schoolID, periodID, employeeID)
	if err != nil {
		if isNotFound(err) {
			return Payslip{}, payrollerrors.ErrPayslipNotFound
		}
		return Payslip{}, err
	}

	return AssemblePayslip(*period, *item), nil
}

func (s *service) updateGuarded(ctx context.Context, qtx Repository, period *PayrollPeriod, expectedStatus string) error {
	affected, err := qtx.UpdatePeriodGuarded(ctx, period, expectedStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		return payrollerrors.ErrConcurrentModification
	}
	return nil
}

func (s *service) audit(ctx context.Context, qtx Repository, period PayrollPeriod, action string, actorID uuid.UUID, remarks string, previous, next map[string]any) error {
	prevJSON, err := json.Marshal(previous)
	if err != nil {
		return err
	}
	nextJSON, err := json.Marshal(next)
	if err != nil {
		return err
	}

	return qtx.CreateAuditLog(ctx, &PayrollAuditLog{
		ID:            uuid.New(),
		SchoolID:      period.SchoolID,
		PeriodID:      period.ID,
		Action:        action,
		ActorID:       actorID,
		Remarks:       remarks,
		PreviousState: datatypes.JSON(prevJSON),
		NewState:      datatypes.JSON(nextJSON),
	})
}

func (s *service) periodEvent(period PayrollPeriod, eventType, actorID, remarks string) events.PayrollPeriodEvent {
	return events.PayrollPeriodEvent{
		EventType:     eventType,
		PeriodID:      period.ID.String(),
		SchoolID:      period.SchoolID.String(),
		ReferenceNo:   period.ReferenceNo,
		Month:         period.Month,
		Year:          period.Year,
		Status:        period.Status,
		ActorID:       actorID,
		Remarks:       remarks,
		EmployeeCount: period.EmployeeCount,
		TotalNet:      money.String(period.TotalNet),
		OccurredAt:    s.now().UTC(),
	}
}

func (s *service) publish(ctx context.Context, tx *sql.Tx, period PayrollPeriod, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		SchoolID:      period.SchoolID.String(),
		AggregateType: aggregateType,
		AggregateID:   period.ID.String(),
		EventType:     topic,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) logTransition(ctx context.Context, period PayrollPeriod, from, actorID string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("school_id", period.SchoolID.String()),
		zap.String("period_id", period.ID.String()),
		zap.String("from", from),
		zap.String("to", period.Status),
		zap.String("actor_id", actorID),
	}
	contextutil.GetLogger(ctx, s.logger).Info("payroll period status changed", append(base, fields...)...)
}

func snapshot(p PayrollPeriod) map[string]any {
	return map[string]any{
		"status":           p.Status,
		"version":          p.Version,
		"employee_count":   p.EmployeeCount,
		"total_gross":      money.String(p.TotalGross),
		"total_deductions": money.String(p.TotalDeductions),
		"total_net":        money.String(p.TotalNet),
	}
}

func validStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusPaid:
		return true
	}
	return false
}

// Normalize applies paging defaults: page 1, 20 per page, at most 100.
func (f *PeriodFilter) Normalize() {
	f.Status = strings.ToUpper(strings.TrimSpace(f.Status))
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}
