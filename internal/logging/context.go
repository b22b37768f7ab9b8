package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldItemID carries the queue item identifier.
	FieldItemID = "item_id"
	// FieldStage carries the workflow stage name.
	FieldStage = "stage"
	// FieldRequestID correlates all records from one workflow pass.
	FieldRequestID = "request_id"
)

type contextKey string

const (
	itemIDKey    contextKey = "item_id"
	stageKey     contextKey = "stage"
	requestIDKey contextKey = "request_id"
)

// WithItemID stores a queue item identifier on the context.
func WithItemID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, itemIDKey, id)
}

// WithStage stores the active workflow stage name on the context.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey, stage)
}

// WithRequestID stores a workflow correlation identifier on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the stored correlation identifier, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// ContextFields extracts the standardized attributes stored on the context.
func ContextFields(ctx context.Context) []Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]Attr, 0, 3)
	if id, ok := ctx.Value(itemIDKey).(int64); ok {
		fields = append(fields, slog.Int64(FieldItemID, id))
	}
	if stage, ok := ctx.Value(stageKey).(string); ok && stage != "" {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRequestID, id))
	}
	return fields
}

// WithContext returns a logger augmented with the context's standard fields.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
