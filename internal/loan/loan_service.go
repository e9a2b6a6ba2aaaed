package loan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	loanerrors "github.com/KinzixInfotech/edutemp-sub017/internal/loan/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	maxTenure  = 360
)

// ProfileLookup is satisfied by payrollprofile.Repository.
type ProfileLookup interface {
	FindByEmployee(ctx context.Context, schoolID, employeeID string) (*payrollprofile.EmployeePayrollProfile, error)
}

type Service interface {
	Create(ctx context.Context, schoolID string, req CreateLoanRequest) (LoanResponse, error)
	ListByEmployee(ctx context.Context, schoolID, employeeID string) ([]LoanResponse, error)
	ListRepayments(ctx context.Context, schoolID, loanID string) ([]RepaymentResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	profiles ProfileLookup
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, profiles ProfileLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{db: db, repo: repo, profiles: profiles, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateLoanRequest) (LoanResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidSchoolID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidEmployeeID
	}
	if !req.Principal.IsPositive() {
		return LoanResponse{}, loanerrors.ErrInvalidPrincipal
	}
	if req.InterestRate.IsNegative() || req.InterestRate.GreaterThan(money.Hundred) {
		return LoanResponse{}, loanerrors.ErrInvalidInterestRate
	}
	if req.TenureMonths < 1 || req.TenureMonths > maxTenure {
		return LoanResponse{}, loanerrors.ErrInvalidTenure
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidStartDate
	}

	profile, err := s.profiles.FindByEmployee(ctx, schoolID, req.EmployeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoanResponse{}, loanerrors.ErrProfileNotFound
	}
	if err != nil {
		return LoanResponse{}, err
	}

	principal := money.Round(req.Principal)
	total, emi := Terms(principal, req.InterestRate, req.TenureMonths)

	l := &EmployeeLoan{
		ID:            uuid.New(),
		SchoolID:      schoolUUID,
		EmployeeID:    employeeUUID,
		ProfileID:     profile.ID,
		LoanType:      req.LoanType,
		Principal:     principal,
		InterestRate:  req.InterestRate,
		TotalAmount:   total,
		EMIAmount:     emi,
		TenureMonths:  req.TenureMonths,
		StartDate:     startDate,
		AmountPaid:    money.Zero,
		AmountPending: total,
		Status:        StatusActive,
		Remarks:       req.Remarks,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		return LoanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LoanResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee loan created",
		zap.String("school_id", schoolID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("loan_id", l.ID.String()),
		zap.String("emi_amount", money.String(emi)),
	)

	return mapLoanResponse(*l), nil
}

func (s *service) ListByEmployee(ctx context.Context, schoolID, employeeID string) ([]LoanResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, schoolID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LoanResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapLoanResponse(row)
	}
	return resp, nil
}

func (s *service) ListRepayments(ctx context.Context, schoolID, loanID string) ([]RepaymentResponse, error) {
	if _, err := s.repo.FindByID(ctx, schoolID, loanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanerrors.ErrLoanNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindRepaymentsByLoan(ctx, schoolID, loanID)
	if err != nil {
		return nil, err
	}

	resp := make([]RepaymentResponse, len(rows))
	for i, row := range rows {
		resp[i] = RepaymentResponse{
			ID:       row.ID.String(),
			PeriodID: row.PeriodID.String(),
			Month:    row.Month,
			Year:     row.Year,
			Amount:   money.String(row.Amount),
			Status:   row.Status,
		}
		if row.PaidAt != nil {
			paid := row.PaidAt.Format(time.RFC3339)
			resp[i].PaidAt = &paid
		}
	}
	return resp, nil
}

func mapLoanResponse(l EmployeeLoan) LoanResponse {
	return LoanResponse{
		ID:               l.ID.String(),
		EmployeeID:       l.EmployeeID.String(),
		LoanType:         l.LoanType,
		Principal:        money.String(l.Principal),
		InterestRate:     l.InterestRate.String(),
		TotalAmount:      money.String(l.TotalAmount),
		EMIAmount:        money.String(l.EMIAmount),
		TenureMonths:     l.TenureMonths,
		StartDate:        l.StartDate.Format(dateLayout),
		AmountPaid:       money.String(l.AmountPaid),
		AmountPending:    money.String(l.AmountPending),
		InstallmentsPaid: l.InstallmentsPaid,
		Status:           l.Status,
		Remarks:          l.Remarks,
	}
}
