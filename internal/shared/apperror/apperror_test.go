package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", apperror.ErrNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestWithCause_MatchesSentinel(t *testing.T) {
	cause := errors.New("duplicate key")
	err := apperror.WithCause(apperror.ErrInvalidInput, cause)

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.ErrorIs(t, err, cause)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		ApproverID string `validate:"required"`
		Month      int    `validate:"min=1,max=12"`
	}

	v := validator.New()

	err := apperror.MapValidationError(v.Struct(payload{Month: 1}))
	assert.Contains(t, err.Error(), "is required")

	err = apperror.MapValidationError(v.Struct(payload{ApproverID: "x", Month: 13}))
	assert.Contains(t, err.Error(), "is invalid")
}
