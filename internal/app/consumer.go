package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simeongugl4-design/workforce-hub-png/internal/contract"
	"github.com/simeongugl4-design/workforce-hub-png/internal/events"
	"github.com/simeongugl4-design/workforce-hub-png/internal/finance"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka/consumer"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payslip"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/connection"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/counter"
	"github.com/simeongugl4-design/workforce-hub-png/internal/timesheet"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	contractService := contract.NewService(contract.NewRepository(gormDB), logger)
	payslipService := payslip.NewService(
		sqlDB,
		payslip.NewRepository(gormDB),
		profile.NewRepository(gormDB),
		timesheet.NewRepository(gormDB),
		contractService,
		finance.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.TimesheetApprovedTopic,
		GroupID:        "workforce-hub-payslip-draft",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeTimesheetApproved(ctx, reader, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
