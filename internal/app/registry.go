package app

import (
	"database/sql"

	"github.com/KinzixInfotech/edutemp-sub017/internal/attendance"
	"github.com/KinzixInfotech/edutemp-sub017/internal/leave"
	"github.com/KinzixInfotech/edutemp-sub017/internal/loan"
	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka"
	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payroll"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollconfig"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payrollprofile"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac"
	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac/infra"
	"github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newPayrollService builds the computation service shared by the API and the consumer.
func newPayrollService(db *sql.DB, gormDB *gorm.DB, workers int) payroll.Service {
	structureRepo := salarystructure.NewRepository(gormDB)
	profileService := payrollprofile.NewService(db, payrollprofile.NewRepository(gormDB), structureRepo)

	return payroll.NewService(payroll.Dependencies{
		DB:         db,
		Repo:       payroll.NewRepository(gormDB),
		Configs:    payrollconfig.NewService(payrollconfig.NewRepository(gormDB)),
		Employees:  profileService,
		Structures: structureRepo,
		Attendance: attendance.NewRepository(gormDB),
		Leave:      leave.NewService(leave.NewRepository(gormDB)),
		Loans:      loan.NewRepository(gormDB),
		Counter:    counter.NewRepository(gormDB),
		Outbox:     kafka.NewOutboxRepository(db),
		Workers:    workers,
	})
}

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	configRepo := payrollconfig.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	profileRepo := payrollprofile.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	configService := payrollconfig.NewService(configRepo)
	structureService := salarystructure.NewService(db, structureRepo)
	profileService := payrollprofile.NewService(db, profileRepo, structureRepo)
	loanService := loan.NewService(db, loanRepo, profileRepo)
	payrollService := payroll.NewService(payroll.Dependencies{
		DB:         db,
		Repo:       payrollRepo,
		Configs:    configService,
		Employees:  profileService,
		Structures: structureRepo,
		Attendance: attendance.NewRepository(gormDB),
		Leave:      leave.NewService(leave.NewRepository(gormDB)),
		Loans:      loanRepo,
		Counter:    counter.NewRepository(gormDB),
		Outbox:     outboxRepo,
		Workers:    cfg.Workers,
	})

	// --- Handlers ---
	configHandler := payrollconfig.NewHandler(configService)
	structureHandler := salarystructure.NewHandler(structureService)
	profileHandler := payrollprofile.NewHandler(profileService)
	loanHandler := loan.NewHandler(loanService)
	payrollHandler := payroll.NewHandler(payrollService, cfg.ComputeAsync)

	// --- Routes Registration ---
	api := router.Group("/api/v1/payroll")
	api.Use(
		middleware.RequestID(),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(zap.L()),
	)
	{
		payrollconfig.RegisterRoutes(api, configHandler, rbacService)
		salarystructure.RegisterRoutes(api, structureHandler, rbacService)
		payrollprofile.RegisterRoutes(api, profileHandler, rbacService)
		loan.RegisterRoutes(api, loanHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
