package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries to the process log. Payroll
// deployments that need a durable trail swap in their own AuditLogger.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("at", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
