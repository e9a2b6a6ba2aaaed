package payroll

import (
	"encoding/json"
	"errors"
	"time"

	payrollerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payroll/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	dateLayout             = "2006-01-02"
	periodMonthConstraint  = "uq_payroll_period_school_month"
	uniqueViolationSQLCode = "23505"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return payrollerrors.ErrPeriodNotFound
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation reports a duplicate (school, month, year) period insert.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationSQLCode && pgErr.ConstraintName == periodMonthConstraint
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapPeriodResponse(p PayrollPeriod) PeriodResponse {
	resp := PeriodResponse{
		ID:                 p.ID.String(),
		ReferenceNo:        p.ReferenceNo,
		Month:              p.Month,
		Year:               p.Year,
		StartDate:          p.StartDate.Format(dateLayout),
		EndDate:            p.EndDate.Format(dateLayout),
		WorkingDays:        p.WorkingDays,
		Status:             p.Status,
		Version:            p.Version,
		EmployeeCount:      p.EmployeeCount,
		TotalGross:         money.String(p.TotalGross),
		TotalDeductions:    money.String(p.TotalDeductions),
		TotalNet:           money.String(p.TotalNet),
		TotalEmployerShare: money.String(p.TotalEmployerShare),
		LastComputedAt:     formatTime(p.LastComputedAt),
		SubmittedAt:        formatTime(p.SubmittedAt),
		ApprovedAt:         formatTime(p.ApprovedAt),
		RejectionRemarks:   p.RejectionRemarks,
		PaidAt:             formatTime(p.PaidAt),
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}

func mapItemResponse(it PayrollItem) ItemResponse {
	return ItemResponse{
		ID:              it.ID.String(),
		EmployeeID:      it.EmployeeID.String(),
		EmployeeName:    it.EmployeeName,
		EmployeeCode:    it.EmployeeCode,
		WorkingDays:     it.WorkingDays,
		DaysWorked:      it.DaysWorked.String(),
		DaysAbsent:      it.DaysAbsent.String(),
		DaysLeave:       it.DaysLeave.String(),
		GrossEarnings:   money.String(it.GrossEarnings),
		TotalDeductions: money.String(it.TotalDeductions),
		NetSalary:       money.String(it.NetSalary),
		PaymentStatus:   it.PaymentStatus,
		Warnings:        []string(it.Warnings),
	}
}

func mapAuditLogResponse(l PayrollAuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:            l.ID.String(),
		Action:        l.Action,
		ActorID:       l.ActorID.String(),
		Remarks:       l.Remarks,
		PreviousState: map[string]any{},
		NewState:      map[string]any{},
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if len(l.PreviousState) > 0 {
		_ = json.Unmarshal(l.PreviousState, &resp.PreviousState)
	}
	if len(l.NewState) > 0 {
		_ = json.Unmarshal(l.NewState, &resp.NewState)
	}
	return resp
}
