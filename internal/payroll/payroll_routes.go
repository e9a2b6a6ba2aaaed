package payroll

import (
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Mutations are limited to 2 req/s per user with a burst of 5.
const (
	mutationRate  = rate.Limit(2)
	mutationBurst = 5
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	limit := middleware.RateLimitByUser(mutationRate, mutationBurst)
	mutation := func(action string, h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{limit, middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, action)}
		if redisClient != nil {
			chain = append(chain, middleware.Idempotency(redisClient))
		}
		return append(chain, h)
	}
	read := middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead)

	periods := r.Group("/periods")
	{
		periods.GET("", read, handler.ListPeriods)
		periods.GET("/:id", read, handler.GetPeriod)
		periods.GET("/:id/items", read, handler.ListItems)
		periods.GET("/:id/audit-logs", read, handler.ListAuditLogs)
		periods.GET("/:id/payslips/:employee_id", read, handler.GetPayslip)

		periods.POST("", mutation(rbac.ActionCompute, handler.CreatePeriod)...)
		periods.POST("/:id/compute", mutation(rbac.ActionCompute, handler.Compute)...)
		periods.POST("/:id/submit", mutation(rbac.ActionSubmit, handler.Submit)...)
		periods.POST("/:id/approve", mutation(rbac.ActionApprove, handler.Approve)...)
		periods.POST("/:id/reject", mutation(rbac.ActionApprove, handler.Reject)...)
		periods.POST("/:id/mark-paid", mutation(rbac.ActionPay, handler.MarkPaid)...)
	}
}
