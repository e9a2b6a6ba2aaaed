package payrollprofile_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile"
	payrollprofileerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	upsertFn          func(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error
	updateFn          func(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error
	findByEmployeeFn  func(ctx context.Context, schoolID, employeeID string) (*payrollprofile.EmployeePayrollProfile, error)
	findAllBySchoolFn func(ctx context.Context, schoolID string, filter payrollprofile.ListFilter) ([]payrollprofile.EmployeePayrollProfile, error)
	findPayableFn     func(ctx context.Context, schoolID string, from, to time.Time) ([]payrollprofile.EmployeePayrollProfile, error)
}

func (f *fakeProfileRepository) WithTx(tx *sql.Tx) payrollprofile.Repository { return f }

func (f *fakeProfileRepository) Upsert(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) Update(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) FindByEmployee(ctx context.Context, schoolID, employeeID string) (*payrollprofile.EmployeePayrollProfile, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, schoolID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) FindAllBySchool(ctx context.Context, schoolID string, filter payrollprofile.ListFilter) ([]payrollprofile.EmployeePayrollProfile, error) {
	if f.findAllBySchoolFn != nil {
		return f.findAllBySchoolFn(ctx, schoolID, filter)
	}
	return nil, nil
}

func (f *fakeProfileRepository) FindPayable(ctx context.Context, schoolID string, from, to time.Time) ([]payrollprofile.EmployeePayrollProfile, error) {
	if f.findPayableFn != nil {
		return f.findPayableFn(ctx, schoolID, from, to)
	}
	return nil, nil
}

type fakeStructureLookup struct {
	found bool
}

func (f fakeStructureLookup) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*salarystructure.SalaryStructure, error) {
	if !f.found {
		return nil, gorm.ErrRecordNotFound
	}
	return &salarystructure.SalaryStructure{ID: uuid.MustParse(id)}, nil
}

func validUpsert(structureID string) payrollprofile.UpsertProfileRequest {
	return payrollprofile.UpsertProfileRequest{
		EmployeeName:      "Anita Sharma",
		EmployeeCode:      "T-014",
		SalaryStructureID: &structureID,
		EmployeeType:      "teaching",
		EmploymentType:    "PERMANENT",
		JoiningDate:       "2024-06-01",
		AccountNumber:     "001234567890",
		IFSCCode:          "sbin0000123",
	}
}

func TestProfileService_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	schoolID, employeeID, structureID := uuid.New().String(), uuid.New().String(), uuid.New().String()

	var stored payrollprofile.EmployeePayrollProfile
	repo := &fakeProfileRepository{
		upsertFn: func(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error {
			stored = *p
			return nil
		},
		findByEmployeeFn: func(ctx context.Context, sid, eid string) (*payrollprofile.EmployeePayrollProfile, error) {
			return &stored, nil
		},
	}
	svc := payrollprofile.NewService(db, repo, fakeStructureLookup{found: true})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Upsert(context.Background(), schoolID, employeeID, validUpsert(structureID))

	assert.NoError(t, err)
	assert.Equal(t, payrollprofile.EmployeeTypeTeaching, resp.EmployeeType)
	assert.Equal(t, "SBIN0000123", resp.IFSCCode)
	assert.Equal(t, "XXXXXXXX7890", resp.AccountNumber)
	assert.Equal(t, structureID, *resp.SalaryStructureID)
	assert.True(t, resp.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_Upsert_Validation(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := payrollprofile.NewService(db, &fakeProfileRepository{}, fakeStructureLookup{found: false})
	schoolID, employeeID := uuid.New().String(), uuid.New().String()

	tests := []struct {
		name    string
		mutate  func(r *payrollprofile.UpsertProfileRequest)
		wantErr error
	}{
		{"unknown employee type", func(r *payrollprofile.UpsertProfileRequest) { r.EmployeeType = "ADMIN" }, payrollprofileerrors.ErrInvalidEmployeeType},
		{"unknown employment type", func(r *payrollprofile.UpsertProfileRequest) { r.EmploymentType = "FREELANCE" }, payrollprofileerrors.ErrInvalidEmploymentType},
		{"bad joining date", func(r *payrollprofile.UpsertProfileRequest) { r.JoiningDate = "01/06/2024" }, payrollprofileerrors.ErrInvalidDateFormat},
		{"relieving before joining", func(r *payrollprofile.UpsertProfileRequest) {
			d := "2024-01-01"
			r.RelievingDate = &d
		}, payrollprofileerrors.ErrRelievingBeforeJoining},
		{"structure in another school", func(r *payrollprofile.UpsertProfileRequest) {}, payrollprofileerrors.ErrStructureNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsert(uuid.New().String())
			tt.mutate(&req)
			_, err := svc.Upsert(context.Background(), schoolID, employeeID, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_Deactivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	existing := &payrollprofile.EmployeePayrollProfile{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		JoiningDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	var updated *payrollprofile.EmployeePayrollProfile
	repo := &fakeProfileRepository{
		findByEmployeeFn: func(ctx context.Context, sid, eid string) (*payrollprofile.EmployeePayrollProfile, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, p *payrollprofile.EmployeePayrollProfile) error {
			updated = p
			return nil
		},
	}
	svc := payrollprofile.NewService(db, repo, fakeStructureLookup{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Deactivate(context.Background(), uuid.New().String(), existing.EmployeeID.String(),
		payrollprofile.DeactivateProfileRequest{RelievingDate: "2026-04-15"})

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "2026-04-15", *resp.RelievingDate)
	assert.False(t, updated.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_Deactivate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := payrollprofile.NewService(db, &fakeProfileRepository{}, fakeStructureLookup{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = svc.Deactivate(context.Background(), uuid.New().String(), uuid.New().String(),
		payrollprofile.DeactivateProfileRequest{RelievingDate: "2026-04-15"})

	assert.ErrorIs(t, err, payrollprofileerrors.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_GetAll_RejectsUnknownType(t *testing.T) {
	svc := payrollprofile.NewService(nil, &fakeProfileRepository{}, fakeStructureLookup{})

	_, err := svc.GetAll(context.Background(), uuid.New().String(), payrollprofile.ListFilter{EmployeeType: "CONTRACTOR"})

	assert.ErrorIs(t, err, payrollprofileerrors.ErrInvalidEmployeeType)
}
