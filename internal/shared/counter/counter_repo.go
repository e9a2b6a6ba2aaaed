package counter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/txutil"

	"gorm.io/gorm"
)

const TypePayrollPeriod = "PAYROLL_PERIOD"

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, schoolID string, counterType string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, schoolID string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert-and-increment per school/type.
	err := txutil.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO school_counters (school_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (school_id, counter_type) DO UPDATE
		SET last_value = school_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, schoolID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// PeriodReference formats a payroll period reference such as PR-202604-0007.
func PeriodReference(year, month int, seq int64) string {
	return fmt.Sprintf("PR-%04d%02d-%04d", year, month, seq)
}
