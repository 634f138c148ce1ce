package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/safelog/core"
)

// ZapHandler forwards entries to a zap logger, so safelog categories
// and fail-safe message construction can feed an existing zap setup.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler delivering to the given zap logger.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle writes the entry through zap with the call-site context as fields.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(zapLevel(entry.Site.Level), entry.Message)
	if ce == nil {
		return nil
	}
	fields := make([]zap.Field, 0, 3)
	if name := entry.Site.CategoryName(); name != "" {
		fields = append(fields, zap.String("category", name))
	}
	if entry.Site.File != "" {
		fields = append(fields,
			zap.String("file", entry.Site.ShortFile()),
			zap.Int("line", entry.Site.Line))
	}
	ce.Write(fields...)
	return nil
}

// zapLevel maps a core level to zapcore. Fatal and Panic map to Error:
// process termination stays with the safelog logger, never with the
// delivery path.
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// CanRecycleEntry returns true because zap copies what it needs in Write.
func (h *ZapHandler) CanRecycleEntry() bool {
	return true
}

// Close flushes zap's buffers.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}
