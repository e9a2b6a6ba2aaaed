package loan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"
	loanerrors "github.com/KinzixInfotech/edutemp-sub017/internal/loan/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLoanService struct {
	createFn         func(ctx context.Context, schoolID string, req loan.CreateLoanRequest) (loan.LoanResponse, error)
	listByEmployeeFn func(ctx context.Context, schoolID, employeeID string) ([]loan.LoanResponse, error)
	listRepaymentsFn func(ctx context.Context, schoolID, loanID string) ([]loan.RepaymentResponse, error)
}

func (f *fakeLoanService) Create(ctx context.Context, schoolID string, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	return f.createFn(ctx, schoolID, req)
}

func (f *fakeLoanService) ListByEmployee(ctx context.Context, schoolID, employeeID string) ([]loan.LoanResponse, error) {
	return f.listByEmployeeFn(ctx, schoolID, employeeID)
}

func (f *fakeLoanService) ListRepayments(ctx context.Context, schoolID, loanID string) ([]loan.RepaymentResponse, error) {
	return f.listRepaymentsFn(ctx, schoolID, loanID)
}

func newLoanContext(method, target, body, schoolID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxSchoolID, schoolID)
	return c, w
}

func TestLoanHandler_Create(t *testing.T) {
	schoolID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeLoanService{
		createFn: func(ctx context.Context, sid string, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
			assert.Equal(t, schoolID, sid)
			assert.Equal(t, "50000", req.Principal.String())
			assert.Equal(t, 10, req.TenureMonths)
			return loan.LoanResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, EMIAmount: "5000.00", Status: "ACTIVE"}, nil
		},
	}
	h := loan.NewHandler(svc)

	body := `{"employee_id":"` + employeeID + `","loan_type":"SALARY_ADVANCE","principal":"50000","interest_rate":"0","tenure_months":10,"start_date":"2026-04-01"}`
	c, w := newLoanContext(http.MethodPost, "/loans", body, schoolID)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var env struct {
		Ok   bool              `json:"ok"`
		Data loan.LoanResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, "5000.00", env.Data.EMIAmount)
}

func TestLoanHandler_Create_BindError(t *testing.T) {
	h := loan.NewHandler(&fakeLoanService{})

	c, w := newLoanContext(http.MethodPost, "/loans", `{"employee_id":"not-a-uuid"}`, uuid.New().String())
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoanHandler_ListByEmployee_RequiresEmployee(t *testing.T) {
	h := loan.NewHandler(&fakeLoanService{})

	c, w := newLoanContext(http.MethodGet, "/loans", "", uuid.New().String())
	h.ListByEmployee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoanHandler_ListRepayments_NotFound(t *testing.T) {
	svc := &fakeLoanService{
		listRepaymentsFn: func(ctx context.Context, schoolID, loanID string) ([]loan.RepaymentResponse, error) {
			return nil, loanerrors.ErrLoanNotFound
		},
	}
	h := loan.NewHandler(svc)

	loanID := uuid.New().String()
	c, w := newLoanContext(http.MethodGet, "/loans/"+loanID+"/repayments", "", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: loanID}}
	h.ListRepayments(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
