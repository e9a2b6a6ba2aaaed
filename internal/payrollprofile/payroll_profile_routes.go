package payrollprofile

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	profiles := r.Group("/profiles")
	{
		profiles.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollProfile, rbac.ActionRead), handler.GetAll)
		profiles.GET("/:employee_id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollProfile, rbac.ActionRead), handler.GetByEmployee)
		profiles.PUT("/:employee_id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollProfile, rbac.ActionWrite), handler.Upsert)
		profiles.POST("/:employee_id/deactivate", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollProfile, rbac.ActionWrite), handler.Deactivate)
	}
}
