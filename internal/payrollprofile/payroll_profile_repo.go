package payrollprofile

import (
	"context"
	"database/sql"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/txutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *EmployeePayrollProfile) error
	Update(ctx context.Context, p *EmployeePayrollProfile) error
	FindByEmployee(ctx context.Context, schoolID, employeeID string) (*EmployeePayrollProfile, error)
	FindAllBySchool(ctx context.Context, schoolID string, filter ListFilter) ([]EmployeePayrollProfile, error)
	// FindPayable returns profiles to be paid for [from, to]: active ones that
	// joined by to, plus inactive ones relieved inside the range.
	FindPayable(ctx context.Context, schoolID string, from, to time.Time) ([]EmployeePayrollProfile, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txutil.Conn(ctx, r.db, r.tx)
}

func (r *repository) Upsert(ctx context.Context, p *EmployeePayrollProfile) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "school_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_name", "employee_code", "salary_structure_id", "employee_type",
				"employment_type", "joining_date", "relieving_date", "bank_name", "account_number",
				"ifsc_code", "pan_number", "uan_number", "esi_number", "is_active", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *EmployeePayrollProfile) error {
	return r.conn(ctx).Save(p).Error
}

func (r *repository) FindByEmployee(ctx context.Context, schoolID, employeeID string) (*EmployeePayrollProfile, error) {
	var p EmployeePayrollProfile
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ?", employeeID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string, filter ListFilter) ([]EmployeePayrollProfile, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(schoolID))
	if filter.EmployeeType != "" {
		q = q.Where("employee_type = ?", filter.EmployeeType)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []EmployeePayrollProfile
	err := q.Order("employee_name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindPayable(ctx context.Context, schoolID string, from, to time.Time) ([]EmployeePayrollProfile, error) {
	fromDate, toDate := from.Format("2006-01-02"), to.Format("2006-01-02")

	var rows []EmployeePayrollProfile
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("joining_date <= ?", toDate).
		Where(
			r.db.Where("is_active = ? AND (relieving_date IS NULL OR relieving_date >= ?)", true, fromDate).
				Or("relieving_date BETWEEN ? AND ?", fromDate, toDate),
		).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}
