package payrollconfig

import (
	"context"

	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	FindActiveBySchool(ctx context.Context, schoolID string) (*PayrollConfig, error)
	// CreateIfAbsent inserts cfg unless the school already has a config.
	CreateIfAbsent(ctx context.Context, cfg *PayrollConfig) error
	Update(ctx context.Context, cfg *PayrollConfig) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveBySchool(ctx context.Context, schoolID string) (*PayrollConfig, error) {
	var cfg PayrollConfig
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("is_active = ?", true).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) CreateIfAbsent(ctx context.Context, cfg *PayrollConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "school_id"}}, DoNothing: true}).
		Create(cfg).Error
}

func (r *repository) Update(ctx context.Context, cfg *PayrollConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
