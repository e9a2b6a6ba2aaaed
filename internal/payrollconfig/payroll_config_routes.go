package payrollconfig

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the config routes on an already authenticated payroll group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	cfg := r.Group("/config")
	{
		cfg.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollConfig, rbac.ActionRead), handler.Get)
		cfg.PUT("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollConfig, rbac.ActionWrite), handler.Update)
	}
}
