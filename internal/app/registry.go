package app

import (
	"database/sql"

	"github.com/simeongugl4-design/workforce-hub-png/internal/analytics"
	"github.com/simeongugl4-design/workforce-hub-png/internal/auth"
	"github.com/simeongugl4-design/workforce-hub-png/internal/authz"
	"github.com/simeongugl4-design/workforce-hub-png/internal/contract"
	"github.com/simeongugl4-design/workforce-hub-png/internal/finance"
	"github.com/simeongugl4-design/workforce-hub-png/internal/message"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka"
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payslip"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/counter"
	"github.com/simeongugl4-design/workforce-hub-png/internal/timesheet"
	"github.com/simeongugl4-design/workforce-hub-png/internal/userrole"
	"github.com/simeongugl4-design/workforce-hub-png/internal/worksummary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	analyticsRepo := analytics.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	financeRepo := finance.NewRepository(gormDB)
	messageRepo := message.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payslipRepo := payslip.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	userRoleRepo := userrole.NewRepository(gormDB)
	workSummaryRepo := worksummary.NewRepository(gormDB)

	// --- Access control ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	userRoleService := userrole.NewService(userRoleRepo)
	authService := auth.NewService(db, authRepo, profileRepo, userRoleService)
	profileService := profile.NewService(profileRepo, userRoleService)
	timesheetService := timesheet.NewService(db, timesheetRepo, profileRepo, outboxRepo)
	financeService := finance.NewService(financeRepo, counterRepo)
	contractService := contract.NewService(contractRepo)
	payslipService := payslip.NewService(
		db,
		payslipRepo,
		profileRepo,
		timesheetRepo,
		contractService,
		financeRepo,
		counterRepo,
		outboxRepo,
	)
	workSummaryService := worksummary.NewService(workSummaryRepo, profileRepo)
	messageService := message.NewService(messageRepo, profileRepo)
	analyticsService := analytics.NewService(analyticsRepo, rdb)

	// --- Handlers ---
	analyticsHandler := analytics.NewHandler(analyticsService)
	authHandler := auth.NewHandler(authService)
	contractHandler := contract.NewHandler(contractService)
	financeHandler := finance.NewHandler(financeService)
	messageHandler := message.NewHandler(messageService)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb)
	profileHandler := profile.NewHandler(profileService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	userRoleHandler := userrole.NewHandler(userRoleService)
	workSummaryHandler := worksummary.NewHandler(workSummaryService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		analytics.RegisterRoutes(api, analyticsHandler, enforcer)
		contract.RegisterRoutes(api, contractHandler, enforcer)
		finance.RegisterRoutes(api, financeHandler, enforcer)
		message.RegisterRoutes(api, messageHandler, enforcer)
		payslip.RegisterRoutes(api, payslipHandler, enforcer, rdb)
		profile.RegisterRoutes(api, profileHandler, enforcer)
		timesheet.RegisterRoutes(api, timesheetHandler, enforcer)
		userrole.RegisterRoutes(api, userRoleHandler, enforcer)
		worksummary.RegisterRoutes(api, workSummaryHandler, enforcer)
	}

	return nil
}
