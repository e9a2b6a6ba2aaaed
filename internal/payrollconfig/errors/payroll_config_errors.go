package payrollconfigerrors

import (
	"net/http"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/apperror"
)

var (
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid school id",
		http.StatusBadRequest,
	)
	ErrInvalidSlabs = apperror.New(
		apperror.CodeInvalidInput,
		"tax slabs must be sorted, non-overlapping and non-negative",
		http.StatusBadRequest,
	)
	ErrInvalidWeeklyOff = apperror.New(
		apperror.CodeInvalidInput,
		"weekly off days must be between 0 (Sunday) and 6 (Saturday)",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"percentages must be between 0 and 100 and limits cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidWorkStart = apperror.New(
		apperror.CodeInvalidInput,
		"work start time must be HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"unknown timezone",
		http.StatusBadRequest,
	)
)
