package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/contract"
	"github.com/simeongugl4-design/workforce-hub-png/internal/finance"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka/producer"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payslip"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/connection"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/counter"
	"github.com/simeongugl4-design/workforce-hub-png/internal/timesheet"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker hosts the outbox poller and the fortnight-close cron job.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	profileRepo := profile.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	contractService := contract.NewService(contract.NewRepository(gormDB), logger)
	payslipService := payslip.NewService(
		sqlDB,
		payslip.NewRepository(gormDB),
		profileRepo,
		timesheetRepo,
		contractService,
		finance.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		outboxRepo,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	// Drafts are refreshed on every approval, but a closing sweep in
	// the early hours of the 1st and 16th catches workers whose last
	// approval predates the consumer.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("0 2 1,16 * *", func() {
		closeFortnight(ctx, profileRepo, payslipService, logger)
	})
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

// closeFortnight sweeps every approved worker and refreshes the draft
// for the fortnight that ended yesterday.
func closeFortnight(
	ctx context.Context,
	profileRepo profile.Repository,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("fortnight_close")
	closedDay := time.Now().AddDate(0, 0, -1)

	q := profile.ListProfilesQuery{
		AccountStatus: profile.AccountStatusApproved,
		Page:          1,
		PageSize:      100,
	}

	var refreshed, skipped int
	for {
		workers, total, err := profileRepo.List(ctx, q)
		if err != nil {
			log.Error("list workers failed", zap.Error(err))
			return
		}

		for i := range workers {
			if !workers[i].IsActive {
				continue
			}
			_, err := payslipService.GenerateDraft(ctx, workers[i].ID, closedDay)
			if err != nil {
				skipped++
				continue
			}
			refreshed++
		}

		if int64(q.Page*q.PageSize) >= total {
			break
		}
		q.Page++
	}

	log.Info("fortnight close sweep finished",
		zap.String("closed_day", closedDay.Format("2006-01-02")),
		zap.Int("refreshed", refreshed),
		zap.Int("skipped", skipped),
	)
}
