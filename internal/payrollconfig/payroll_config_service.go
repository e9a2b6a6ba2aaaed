package payrollconfig

import (
	"context"
	"errors"
	"time"

	payrollconfigerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payrollconfig/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"
	"github.com/KinzixInfotech/edutemp-sub017/internal/statutory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service interface {
	// Get returns the school's active config, creating the default on first read.
	Get(ctx context.Context, schoolID string) (PayrollConfig, error)
	Update(ctx context.Context, schoolID string, req UpdateConfigRequest) (PayrollConfig, error)
}

type service struct {
	repo   Repository
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollconfig.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, schoolID string) (PayrollConfig, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return PayrollConfig{}, payrollconfigerrors.ErrInvalidSchoolID
	}

	cfg, err := s.repo.FindActiveBySchool(ctx, schoolID)
	if err == nil {
		return *cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollConfig{}, err
	}

	// Concurrent first reads for a school share one insert.
	v, err, _ := s.group.Do(schoolID, func() (any, error) {
		def := Default(schoolUUID)
		if err := s.repo.CreateIfAbsent(ctx, &def); err != nil {
			return nil, err
		}
		created, err := s.repo.FindActiveBySchool(ctx, schoolID)
		if err != nil {
			return nil, err
		}
		contextutil.GetLogger(ctx, s.logger).Info("default payroll config created",
			zap.String("school_id", schoolID),
		)
		return *created, nil
	})
	if err != nil {
		return PayrollConfig{}, err
	}

	return v.(PayrollConfig), nil
}

func (s *service) Update(ctx context.Context, schoolID string, req UpdateConfigRequest) (PayrollConfig, error) {
	cfg, err := s.Get(ctx, schoolID)
	if err != nil {
		return PayrollConfig{}, err
	}

	if err := applyUpdate(&cfg, req); err != nil {
		return PayrollConfig{}, err
	}

	if err := s.repo.Update(ctx, &cfg); err != nil {
		return PayrollConfig{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll config updated",
		zap.String("school_id", schoolID),
		zap.String("config_id", cfg.ID.String()),
	)

	return cfg, nil
}

func applyUpdate(cfg *PayrollConfig, req UpdateConfigRequest) error {
	setInt(&cfg.PayCycleDay, req.PayCycleDay)
	setInt(&cfg.PaymentDay, req.PaymentDay)
	setInt(&cfg.StandardWorkingDays, req.StandardWorkingDays)
	setInt(&cfg.LateGraceMinutes, req.LateGraceMinutes)

	if req.WeeklyOffDays != nil {
		for _, d := range *req.WeeklyOffDays {
			if d < int(time.Sunday) || d > int(time.Saturday) {
				return payrollconfigerrors.ErrInvalidWeeklyOff
			}
		}
		cfg.WeeklyOffDays = datatypes.JSONSlice[int](*req.WeeklyOffDays)
	}

	if req.WorkStartTime != nil {
		if *req.WorkStartTime != "" {
			if _, err := time.Parse("15:04", *req.WorkStartTime); err != nil {
				return payrollconfigerrors.ErrInvalidWorkStart
			}
		}
		cfg.WorkStartTime = *req.WorkStartTime
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return payrollconfigerrors.ErrInvalidTimezone
		}
		cfg.Timezone = *req.Timezone
	}

	setBool(&cfg.PFEnabled, req.PFEnabled)
	setBool(&cfg.ESIEnabled, req.ESIEnabled)
	setBool(&cfg.ProfessionalTaxEnabled, req.ProfessionalTaxEnabled)
	setBool(&cfg.TDSEnabled, req.TDSEnabled)
	setBool(&cfg.OvertimeEnabled, req.OvertimeEnabled)
	setBool(&cfg.LeaveEncashmentEnabled, req.LeaveEncashmentEnabled)

	for _, p := range []struct {
		dst *decimal.Decimal
		src *decimal.Decimal
	}{
		{&cfg.PFEmployeePercent, req.PFEmployeePercent},
		{&cfg.PFEmployerPercent, req.PFEmployerPercent},
		{&cfg.ESIEmployeePercent, req.ESIEmployeePercent},
		{&cfg.ESIEmployerPercent, req.ESIEmployerPercent},
	} {
		if p.src == nil {
			continue
		}
		if p.src.IsNegative() || p.src.GreaterThan(decimal.NewFromInt(100)) {
			return payrollconfigerrors.ErrInvalidRate
		}
		*p.dst = *p.src
	}

	for _, p := range []struct {
		dst *decimal.Decimal
		src *decimal.Decimal
	}{
		{&cfg.PFWageLimit, req.PFWageLimit},
		{&cfg.ESIWageLimit, req.ESIWageLimit},
		{&cfg.OvertimeRate, req.OvertimeRate},
		{&cfg.StandardWorkingHours, req.StandardWorkingHours},
		{&cfg.HalfDayThresholdHours, req.HalfDayThresholdHours},
	} {
		if p.src == nil {
			continue
		}
		if p.src.IsNegative() {
			return payrollconfigerrors.ErrInvalidRate
		}
		*p.dst = *p.src
	}

	if req.ProfessionalTaxSlabs != nil {
		if err := statutory.ValidateSlabs(*req.ProfessionalTaxSlabs); err != nil {
			return payrollconfigerrors.ErrInvalidSlabs
		}
		cfg.ProfessionalTaxSlabs = datatypes.JSONSlice[statutory.Slab](*req.ProfessionalTaxSlabs)
	}
	if req.TDSSlabs != nil {
		if err := statutory.ValidateSlabs(*req.TDSSlabs); err != nil {
			return payrollconfigerrors.ErrInvalidSlabs
		}
		cfg.TDSSlabs = datatypes.JSONSlice[statutory.Slab](*req.TDSSlabs)
	}

	if !cfg.StandardWorkingHours.IsPositive() {
		return payrollconfigerrors.ErrInvalidRate
	}

	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func mapToResponse(cfg PayrollConfig) ConfigResponse {
	return ConfigResponse{
		ID:                     cfg.ID.String(),
		SchoolID:               cfg.SchoolID.String(),
		PayCycleDay:            cfg.PayCycleDay,
		PaymentDay:             cfg.PaymentDay,
		StandardWorkingDays:    cfg.StandardWorkingDays,
		StandardWorkingHours:   cfg.StandardWorkingHours,
		WeeklyOffDays:          []int(cfg.WeeklyOffDays),
		WorkStartTime:          cfg.WorkStartTime,
		Timezone:               cfg.Timezone,
		PFEnabled:              cfg.PFEnabled,
		PFEmployeePercent:      cfg.PFEmployeePercent,
		PFEmployerPercent:      cfg.PFEmployerPercent,
		PFWageLimit:            cfg.PFWageLimit,
		ESIEnabled:             cfg.ESIEnabled,
		ESIEmployeePercent:     cfg.ESIEmployeePercent,
		ESIEmployerPercent:     cfg.ESIEmployerPercent,
		ESIWageLimit:           cfg.ESIWageLimit,
		ProfessionalTaxEnabled: cfg.ProfessionalTaxEnabled,
		ProfessionalTaxSlabs:   []statutory.Slab(cfg.ProfessionalTaxSlabs),
		TDSEnabled:             cfg.TDSEnabled,
		TDSSlabs:               []statutory.Slab(cfg.TDSSlabs),
		OvertimeEnabled:        cfg.OvertimeEnabled,
		OvertimeRate:           cfg.OvertimeRate,
		LeaveEncashmentEnabled: cfg.LeaveEncashmentEnabled,
		LateGraceMinutes:       cfg.LateGraceMinutes,
		HalfDayThresholdHours:  cfg.HalfDayThresholdHours,
		UpdatedAt:              cfg.UpdatedAt.Format(time.RFC3339),
	}
}
