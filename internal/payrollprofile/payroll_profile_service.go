package payrollprofile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	payrollprofileerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// StructureLookup is satisfied by salarystructure.Repository.
type StructureLookup interface {
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*salarystructure.SalaryStructure, error)
}

type Service interface {
	Upsert(ctx context.Context, schoolID, employeeID string, req UpsertProfileRequest) (ProfileResponse, error)
	Deactivate(ctx context.Context, schoolID, employeeID string, req DeactivateProfileRequest) (ProfileResponse, error)
	GetAll(ctx context.Context, schoolID string, filter ListFilter) ([]ProfileResponse, error)
	GetByEmployee(ctx context.Context, schoolID, employeeID string) (ProfileResponse, error)
	// PayableEmployees is the employee directory used by payroll computation.
	PayableEmployees(ctx context.Context, schoolID string, from, to time.Time) ([]EmployeePayrollProfile, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	structures StructureLookup
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, structures StructureLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollprofile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollprofile.service")
	}
	return &service{db: db, repo: repo, structures: structures, logger: l}
}

func (s *service) Upsert(ctx context.Context, schoolID, employeeID string, req UpsertProfileRequest) (ProfileResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return ProfileResponse{}, payrollprofileerrors.ErrInvalidSchoolID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return ProfileResponse{}, payrollprofileerrors.ErrInvalidEmployeeID
	}

	profile := &EmployeePayrollProfile{
		ID:         uuid.New(),
		SchoolID:   schoolUUID,
		EmployeeID: employeeUUID,
		IsActive:   true,
	}
	if err := applyRequest(profile, req); err != nil {
		return ProfileResponse{}, err
	}

	if profile.SalaryStructureID != nil {
		_, err := s.structures.FindByIDAndSchool(ctx, schoolID, profile.SalaryStructureID.String())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, payrollprofileerrors.ErrStructureNotFound
		}
		if err != nil {
			return ProfileResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Upsert(ctx, profile); err != nil {
		return ProfileResponse{}, err
	}

	saved, err := qtx.FindByEmployee(ctx, schoolID, employeeID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll profile saved",
		zap.String("school_id", schoolID),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*saved), nil
}

func (s *service) Deactivate(ctx context.Context, schoolID, employeeID string, req DeactivateProfileRequest) (ProfileResponse, error) {
	relieving, err := time.Parse(dateLayout, req.RelievingDate)
	if err != nil {
		return ProfileResponse{}, payrollprofileerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile, err := qtx.FindByEmployee(ctx, schoolID, employeeID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	if relieving.Before(profile.JoiningDate) {
		return ProfileResponse{}, payrollprofileerrors.ErrRelievingBeforeJoining
	}

	profile.IsActive = false
	profile.RelievingDate = &relieving

	if err := qtx.Update(ctx, profile); err != nil {
		return ProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll profile deactivated",
		zap.String("school_id", schoolID),
		zap.String("employee_id", employeeID),
		zap.String("relieving_date", req.RelievingDate),
	)

	return mapToResponse(*profile), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter ListFilter) ([]ProfileResponse, error) {
	if filter.EmployeeType != "" && !validEmployeeType(filter.EmployeeType) {
		return nil, payrollprofileerrors.ErrInvalidEmployeeType
	}

	rows, err := s.repo.FindAllBySchool(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]ProfileResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) GetByEmployee(ctx context.Context, schoolID, employeeID string) (ProfileResponse, error) {
	profile, err := s.repo.FindByEmployee(ctx, schoolID, employeeID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*profile), nil
}

func (s *service) PayableEmployees(ctx context.Context, schoolID string, from, to time.Time) ([]EmployeePayrollProfile, error) {
	return s.repo.FindPayable(ctx, schoolID, from, to)
}

func applyRequest(p *EmployeePayrollProfile, req UpsertProfileRequest) error {
	employeeType := strings.ToUpper(req.EmployeeType)
	if !validEmployeeType(employeeType) {
		return payrollprofileerrors.ErrInvalidEmployeeType
	}
	employmentType := strings.ToUpper(req.EmploymentType)
	switch employmentType {
	case EmploymentPermanent, EmploymentContract, EmploymentProbation, EmploymentPartTime:
	default:
		return payrollprofileerrors.ErrInvalidEmploymentType
	}

	joining, err := time.Parse(dateLayout, req.JoiningDate)
	if err != nil {
		return payrollprofileerrors.ErrInvalidDateFormat
	}

	var relieving *time.Time
	if req.RelievingDate != nil && *req.RelievingDate != "" {
		t, err := time.Parse(dateLayout, *req.RelievingDate)
		if err != nil {
			return payrollprofileerrors.ErrInvalidDateFormat
		}
		if t.Before(joining) {
			return payrollprofileerrors.ErrRelievingBeforeJoining
		}
		relieving = &t
	}

	var structureID *uuid.UUID
	if req.SalaryStructureID != nil && *req.SalaryStructureID != "" {
		id, err := uuid.Parse(*req.SalaryStructureID)
		if err != nil {
			return payrollprofileerrors.ErrInvalidStructureID
		}
		structureID = &id
	}

	p.EmployeeName = strings.TrimSpace(req.EmployeeName)
	p.EmployeeCode = strings.TrimSpace(req.EmployeeCode)
	p.SalaryStructureID = structureID
	p.EmployeeType = employeeType
	p.EmploymentType = employmentType
	p.JoiningDate = joining
	p.RelievingDate = relieving
	p.BankName = req.BankName
	p.AccountNumber = req.AccountNumber
	p.IFSCCode = strings.ToUpper(req.IFSCCode)
	p.PANNumber = strings.ToUpper(req.PANNumber)
	p.UANNumber = req.UANNumber
	p.ESINumber = req.ESINumber
	return nil
}

func validEmployeeType(t string) bool {
	return t == EmployeeTypeTeaching || t == EmployeeTypeNonTeaching
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollprofileerrors.ErrProfileNotFound
	}
	return err
}

func mapToResponse(p EmployeePayrollProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:             p.ID.String(),
		EmployeeID:     p.EmployeeID.String(),
		EmployeeName:   p.EmployeeName,
		EmployeeCode:   p.EmployeeCode,
		EmployeeType:   p.EmployeeType,
		EmploymentType: p.EmploymentType,
		JoiningDate:    p.JoiningDate.Format(dateLayout),
		BankName:       p.BankName,
		AccountNumber:  p.MaskedAccount(),
		IFSCCode:       p.IFSCCode,
		PANNumber:      p.PANNumber,
		IsActive:       p.IsActive,
	}
	if p.SalaryStructureID != nil {
		id := p.SalaryStructureID.String()
		resp.SalaryStructureID = &id
	}
	if p.RelievingDate != nil {
		d := p.RelievingDate.Format(dateLayout)
		resp.RelievingDate = &d
	}
	return resp
}
