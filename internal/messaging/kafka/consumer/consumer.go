package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/events"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payslip"
	paysliperrors "github.com/simeongugl4-design/workforce-hub-png/internal/payslip/errors"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTimesheetApproved keeps draft payslips in step with approvals.
// Each approved timesheet triggers a recompute of the worker's draft
// for that fortnight.
func ConsumeTimesheetApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timesheet_approved")
	log.Info("timesheet approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timesheet approved consumer stopped")
				return
			}
			log.Error("fetch timesheet approved message failed", zap.Error(err))
			continue
		}

		var event events.TimesheetApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode timesheet_approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		workerID, err := uuid.Parse(event.WorkerID)
		if err != nil {
			log.Error("timesheet_approved event carries malformed worker id",
				zap.String("worker_id", event.WorkerID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		day, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			log.Error("timesheet_approved event carries malformed date",
				zap.String("date", event.Date),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payslipService.GenerateDraft(ctx, workerID, day)
		if err != nil && !errors.Is(err, paysliperrors.ErrNoApprovedHours) {
			log.Error("refresh draft payslip failed",
				zap.String("worker_id", event.WorkerID),
				zap.String("timesheet_id", event.TimesheetID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timesheet approved message failed", zap.Error(err))
			continue
		}

		log.Info("draft payslip refreshed from timesheet approval",
			zap.String("worker_id", event.WorkerID),
			zap.String("timesheet_id", event.TimesheetID),
		)
	}
}
