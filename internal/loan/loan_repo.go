package loan

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
	Create(ctx context.Context, l *EmployeeLoan) error
	Update(ctx context.Context, l *EmployeeLoan) error
	FindByID(ctx context.Context, schoolID, id string) (*EmployeeLoan, error)
	FindByEmployee(ctx context.Context, schoolID, employeeID string) ([]EmployeeLoan, error)
	FindActiveByEmployee(ctx context.Context, schoolID, employeeID string) ([]EmployeeLoan, error)
	// FindByIDsForUpdate row-locks the loans until the surrounding tx ends.
	FindByIDsForUpdate(ctx context.Context, schoolID string, ids []string) ([]EmployeeLoan, error)

	// CreateRepayment reports false when the loan already has a repayment for
	// the month.
	CreateRepayment(ctx context.Context, r *LoanRepayment) (bool, error)
	FindRepaymentsByLoan(ctx context.Context, schoolID, loanID string) ([]LoanRepayment, error)
	MarkRepaymentsPaid(ctx context.Context, schoolID, periodID string, paidAt time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, l *EmployeeLoan) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *EmployeeLoan) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) FindByID(ctx context.Context, schoolID, id string) (*EmployeeLoan, error) {
	var l EmployeeLoan
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, schoolID, employeeID string) ([]EmployeeLoan, error) {
	var rows []EmployeeLoan
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveByEmployee(ctx context.Context, schoolID, employeeID string) ([]EmployeeLoan, error) {
	var rows []EmployeeLoan
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ? AND status = ?", employeeID, StatusActive).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDsForUpdate(ctx context.Context, schoolID string, ids []string) ([]EmployeeLoan, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []EmployeeLoan
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(schoolID)).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateRepayment(ctx context.Context, rp *LoanRepayment) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "loan_id"}, {Name: "month"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(rp)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindRepaymentsByLoan(ctx context.Context, schoolID, loanID string) ([]LoanRepayment, error) {
	var rows []LoanRepayment
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("loan_id = ?", loanID).
		Order("year ASC, month ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) MarkRepaymentsPaid(ctx context.Context, schoolID, periodID string, paidAt time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&LoanRepayment{}).
		Scopes(tenant.Scope(schoolID)).
		Where("period_id = ? AND status = ?", periodID, RepaymentDeducted).
		Updates(map[string]any{"status": RepaymentPaid, "paid_at": paidAt})
	return res.RowsAffected, res.Error
}
