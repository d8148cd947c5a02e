package audit

import (
	"context"

	"go.uber.org/zap"
)

// Recorder persists audit events.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// Logger records audit events as structured log entries on a dedicated channel.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Record(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.Time("at", ev.At),
	}
	if ev.EntityID != "" {
		fields = append(fields, zap.String("entity_id", ev.EntityID))
	}
	if ev.Actor != "" {
		fields = append(fields, zap.String("actor", ev.Actor))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info("audit event", fields...)
	return nil
}
