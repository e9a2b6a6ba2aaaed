package salarystructureerrors

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
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrStructureNameExists = apperror.New(
		apperror.CodeConflict,
		"a salary structure with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"salary amounts cannot be negative and percentages must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrBasicRequired = apperror.New(
		apperror.CodeInvalidInput,
		"basic salary must be greater than zero",
		http.StatusBadRequest,
	)
)
