package salarystructure

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	structures := r.Group("/structures")
	{
		structures.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionRead), handler.GetAll)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionRead), handler.GetByID)
		structures.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionWrite), handler.Create)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionWrite), handler.Update)
	}
}
