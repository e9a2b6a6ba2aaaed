package leave

import (
	"context"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	FindApprovedOverlapping(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]Leave, error)
	FindEncashableBalances(ctx context.Context, schoolID, employeeID string) ([]Balance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedOverlapping(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindEncashableBalances(ctx context.Context, schoolID, employeeID string) ([]Balance, error) {
	var balances []Balance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ?", employeeID).
		Where("encashable = ?", true).
		Find(&balances).Error
	return balances, err
}
