package payrollconfig_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollconfig"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeConfigService struct {
	getFn    func(ctx context.Context, schoolID string) (payrollconfig.PayrollConfig, error)
	updateFn func(ctx context.Context, schoolID string, req payrollconfig.UpdateConfigRequest) (payrollconfig.PayrollConfig, error)
}

func (f *fakeConfigService) Get(ctx context.Context, schoolID string) (payrollconfig.PayrollConfig, error) {
	return f.getFn(ctx, schoolID)
}

func (f *fakeConfigService) Update(ctx context.Context, schoolID string, req payrollconfig.UpdateConfigRequest) (payrollconfig.PayrollConfig, error) {
	return f.updateFn(ctx, schoolID, req)
}

func newConfigContext(method, body, schoolID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/config", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxSchoolID, schoolID)
	return c, w
}

func TestConfigHandler_Get_ReturnsDefaults(t *testing.T) {
	schoolID := uuid.New()
	h := payrollconfig.NewHandler(&fakeConfigService{
		getFn: func(ctx context.Context, sid string) (payrollconfig.PayrollConfig, error) {
			return payrollconfig.Default(uuid.MustParse(sid)), nil
		},
	})

	c, w := newConfigContext(http.MethodGet, "", schoolID.String())
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Ok   bool                         `json:"ok"`
		Data payrollconfig.ConfigResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, schoolID.String(), env.Data.SchoolID)
	assert.Equal(t, 26, env.Data.StandardWorkingDays)
}

func TestConfigHandler_Update_PartialBody(t *testing.T) {
	h := payrollconfig.NewHandler(&fakeConfigService{
		updateFn: func(ctx context.Context, sid string, req payrollconfig.UpdateConfigRequest) (payrollconfig.PayrollConfig, error) {
			assert.NotNil(t, req.ESIEnabled)
			assert.True(t, *req.ESIEnabled)
			assert.Nil(t, req.PFEnabled)
			cfg := payrollconfig.Default(uuid.MustParse(sid))
			cfg.ESIEnabled = true
			return cfg, nil
		},
	})

	c, w := newConfigContext(http.MethodPut, `{"esi_enabled":true}`, uuid.New().String())
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfigHandler_Update_RejectsOutOfRangeCycleDay(t *testing.T) {
	h := payrollconfig.NewHandler(&fakeConfigService{})

	c, w := newConfigContext(http.MethodPut, `{"pay_cycle_day":40}`, uuid.New().String())
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
