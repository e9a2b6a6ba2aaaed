package payroll

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/txutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// itemValueColumns are overwritten when an item is recomputed.
var itemValueColumns = []string{
	"profile_id", "salary_structure_id", "employee_name", "employee_code", "employee_type",
	"working_days", "days_worked", "days_absent", "days_leave", "days_holiday", "late_count",
	"half_day_count", "overtime_hours", "basic", "hra", "da", "ta", "medical", "special", "other",
	"overtime", "leave_encashment", "gross_earnings", "pf_employee", "pf_employer", "esi_employee",
	"esi_employer", "professional_tax", "tds", "loan_deduction", "total_deductions", "net_salary",
	"loan_lines", "warnings", "payment_status", "paid_at",
}

// itemUpsertClause overwrites a recomputed item only when one of its values
// differs, so an unchanged recompute leaves the stored row untouched,
// updated_at included.
func itemUpsertClause() clause.OnConflict {
	table := PayrollItem{}.TableName()
	stored := make([]string, len(itemValueColumns))
	incoming := make([]string, len(itemValueColumns))
	for i, col := range itemValueColumns {
		stored[i] = table + "." + col
		incoming[i] = "excluded." + col
	}

	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "period_id"}, {Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns(append(slices.Clone(itemValueColumns), "updated_at")),
		Where: clause.Where{Exprs: []clause.Expression{clause.Expr{
			SQL: "(" + strings.Join(stored, ", ") + ") IS DISTINCT FROM (" + strings.Join(incoming, ", ") + ")",
		}}},
	}
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePeriod(ctx context.Context, p *PayrollPeriod) error
	FindPeriodByID(ctx context.Context, schoolID, id string) (*PayrollPeriod, error)
	FindPeriodByIDForUpdate(ctx context.Context, schoolID, id string) (*PayrollPeriod, error)
	FindPeriodByMonth(ctx context.Context, schoolID string, month, year int) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context, schoolID string, filter PeriodFilter) ([]PayrollPeriod, int64, error)
	// UpdatePeriodGuarded writes p only if the stored row still has
	// expectedStatus and p.Version, bumping the version. It returns the rows affected.
	UpdatePeriodGuarded(ctx context.Context, p *PayrollPeriod, expectedStatus string) (int64, error)

	UpsertItems(ctx context.Context, items []PayrollItem) error
	DeleteItemsExcept(ctx context.Context, periodID string, keepEmployeeIDs []uuid.UUID) error
	ListItems(ctx context.Context, schoolID, periodID string) ([]PayrollItem, error)
	FindItem(ctx context.Context, schoolID, periodID, employeeID string) (*PayrollItem, error)
	CountItems(ctx context.Context, periodID string) (int64, error)
	MarkItemsPaid(ctx context.Context, periodID string, paidAt time.Time) error

	CreateAuditLog(ctx context.Context, log *PayrollAuditLog) error
	ListAuditLogs(ctx context.Context, schoolID, periodID string) ([]PayrollAuditLog, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txutil.Conn(ctx, r.db, r.tx)
}

func (r *repository) CreatePeriod(ctx context.Context, p *PayrollPeriod) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindPeriodByID(ctx context.Context, schoolID, id string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindPeriodByIDForUpdate(ctx context.Context, schoolID, id string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(schoolID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindPeriodByMonth(ctx context.Context, schoolID string, month, year int) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("month = ? AND year = ?", month, year).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListPeriods(ctx context.Context, schoolID string, filter PeriodFilter) ([]PayrollPeriod, int64, error) {
	q := r.conn(ctx).Model(&PayrollPeriod{}).Scopes(tenant.Scope(schoolID))
	if filter.Year > 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []PayrollPeriod
	err := q.
		Order("year DESC, month DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) UpdatePeriodGuarded(ctx context.Context, p *PayrollPeriod, expectedStatus string) (int64, error) {
	expectedVersion := p.Version
	p.Version++

	res := r.conn(ctx).
		Model(&PayrollPeriod{}).
		Where("id = ? AND status = ? AND version = ?", p.ID, expectedStatus, expectedVersion).
		Select("*").
		Omit("id", "school_id", "month", "year", "reference_no", "created_by", "created_at").
		Updates(p)
	if res.Error != nil || res.RowsAffected == 0 {
		p.Version = expectedVersion
	}
	return res.RowsAffected, res.Error
}

func (r *repository) UpsertItems(ctx context.Context, items []PayrollItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(itemUpsertClause()).
		CreateInBatches(items, 200).Error
}

func (r *repository) DeleteItemsExcept(ctx context.Context, periodID string, keepEmployeeIDs []uuid.UUID) error {
	q := r.conn(ctx).Where("period_id = ?", periodID)
	if len(keepEmployeeIDs) > 0 {
		q = q.Where("employee_id NOT IN ?", keepEmployeeIDs)
	}
	return q.Delete(&PayrollItem{}).Error
}

func (r *repository) ListItems(ctx context.Context, schoolID, periodID string) ([]PayrollItem, error) {
	var rows []PayrollItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("period_id = ?", periodID).
		Order("employee_name ASC, employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindItem(ctx context.Context, schoolID, periodID, employeeID string) (*PayrollItem, error) {
	var item PayrollItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("period_id = ? AND employee_id = ?", periodID, employeeID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CountItems(ctx context.Context, periodID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&PayrollItem{}).
		Where("period_id = ?", periodID).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkItemsPaid(ctx context.Context, periodID string, paidAt time.Time) error {
	return r.conn(ctx).
		Model(&PayrollItem{}).
		Where("period_id = ?", periodID).
		Updates(map[string]any{"payment_status": PaymentPaid, "paid_at": paidAt}).Error
}

func (r *repository) CreateAuditLog(ctx context.Context, log *PayrollAuditLog) error {
	return r.conn(ctx).Create(log).Error
}

func (r *repository) ListAuditLogs(ctx context.Context, schoolID, periodID string) ([]PayrollAuditLog, error) {
	var rows []PayrollAuditLog
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("period_id = ?", periodID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
