package salarystructure

import (
	"context"
	"database/sql"
	"time"

	salarystructureerrors "github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error)
	Update(ctx context.Context, schoolID, id string, req StructureRequest) (StructureResponse, error)
	GetAll(ctx context.Context, schoolID string, filter ListFilter) ([]StructureResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (StructureResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return StructureResponse{}, salarystructureerrors.ErrInvalidSchoolID
	}
	if err := validateRequest(req); err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure := &SalaryStructure{ID: uuid.New(), SchoolID: schoolUUID, IsActive: true}
	applyRequest(structure, req)

	if err := qtx.Create(ctx, structure); err != nil {
		return StructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary structure created",
		zap.String("school_id", schoolID),
		zap.String("structure_id", structure.ID.String()),
		zap.String("gross_salary", money.String(structure.GrossSalary)),
	)

	return mapToResponse(*structure), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, req StructureRequest) (StructureResponse, error) {
	if err := validateRequest(req); err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err)
	}

	applyRequest(structure, req)

	if err := qtx.Update(ctx, structure); err != nil {
		return StructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter ListFilter) ([]StructureResponse, error) {
	rows, err := s.repo.FindAllBySchool(ctx, schoolID, filter.ActiveOnly)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]StructureResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (StructureResponse, error) {
	structure, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*structure), nil
}

func validateRequest(req StructureRequest) error {
	if !req.BasicSalary.IsPositive() {
		return salarystructureerrors.ErrBasicRequired
	}
	hundred := decimal.NewFromInt(100)
	for _, pct := range []decimal.Decimal{req.HRAPercent, req.DAPercent} {
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return salarystructureerrors.ErrInvalidAmount
		}
	}
	for _, amt := range []decimal.Decimal{req.TransportAllowance, req.MedicalAllowance, req.SpecialAllowance, req.OtherAllowance} {
		if amt.IsNegative() {
			return salarystructureerrors.ErrInvalidAmount
		}
	}
	return nil
}

// applyRequest copies the inputs and refreshes the derived gross and CTC.
func applyRequest(s *SalaryStructure, req StructureRequest) {
	s.Name = req.Name
	s.Description = req.Description
	s.BasicSalary = money.Round(req.BasicSalary)
	s.HRAPercent = req.HRAPercent
	s.DAPercent = req.DAPercent
	s.TransportAllowance = money.Round(req.TransportAllowance)
	s.MedicalAllowance = money.Round(req.MedicalAllowance)
	s.SpecialAllowance = money.Round(req.SpecialAllowance)
	s.OtherAllowance = money.Round(req.OtherAllowance)
	s.TransportNonProrated = req.TransportNonProrated
	s.MedicalNonProrated = req.MedicalNonProrated
	s.SpecialNonProrated = req.SpecialNonProrated
	s.OtherNonProrated = req.OtherNonProrated
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	s.Recompute()
}

func mapToResponse(s SalaryStructure) StructureResponse {
	return StructureResponse{
		ID:                   s.ID.String(),
		Name:                 s.Name,
		Description:          s.Description,
		BasicSalary:          money.String(s.BasicSalary),
		HRAPercent:           s.HRAPercent,
		DAPercent:            s.DAPercent,
		TransportAllowance:   money.String(s.TransportAllowance),
		MedicalAllowance:     money.String(s.MedicalAllowance),
		SpecialAllowance:     money.String(s.SpecialAllowance),
		OtherAllowance:       money.String(s.OtherAllowance),
		TransportNonProrated: s.TransportNonProrated,
		MedicalNonProrated:   s.MedicalNonProrated,
		SpecialNonProrated:   s.SpecialNonProrated,
		OtherNonProrated:     s.OtherNonProrated,
		GrossSalary:          money.String(s.GrossSalary),
		CTC:                  money.String(s.CTC),
		IsActive:             s.IsActive,
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}
