package salarystructure

import (
	"context"
	"database/sql"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/txutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SalaryStructure) error
	Update(ctx context.Context, s *SalaryStructure) error
	FindAllBySchool(ctx context.Context, schoolID string, activeOnly bool) ([]SalaryStructure, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*SalaryStructure, error)
	FindByIDs(ctx context.Context, schoolID string, ids []string) ([]SalaryStructure, error)
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

func (r *repository) Create(ctx context.Context, s *SalaryStructure) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *SalaryStructure) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string, activeOnly bool) ([]SalaryStructure, error) {
	var rows []SalaryStructure
	q := r.conn(ctx).Scopes(tenant.Scope(schoolID))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDs(ctx context.Context, schoolID string, ids []string) ([]SalaryStructure, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []SalaryStructure
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}
