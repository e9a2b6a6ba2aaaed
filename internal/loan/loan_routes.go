package loan

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	loans := r.Group("/loans")
	{
		loans.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLoan, rbac.ActionRead), handler.ListByEmployee)
		loans.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceLoan, rbac.ActionWrite), handler.Create)
		loans.GET("/:id/repayments", middleware.RBACAuthorize(rbacService, rbac.ResourceLoan, rbac.ActionRead), handler.ListRepayments)
	}
}
