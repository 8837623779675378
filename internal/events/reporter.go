package events

import "log/slog"

// LogReporter forwards core events to a slog logger. The logger's
// handler decides the destination and format.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter creates a Reporter backed by the given logger.
func NewLogReporter(log *slog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) EntityCreated(entity string, id int) {
	r.log.Info("entity created", "entity", entity, "id", id)
}

func (r *LogReporter) EntityUpdated(entity string, id int) {
	r.log.Info("entity updated", "entity", entity, "id", id)
}

func (r *LogReporter) EntityDeleted(entity string, id int) {
	r.log.Info("entity deleted", "entity", entity, "id", id)
}

func (r *LogReporter) ValidationRejected(entity, field, reason string) {
	r.log.Warn("validation rejected", "entity", entity, "field", field, "reason", reason)
}

func (r *LogReporter) StorageFault(op string, err error) {
	r.log.Error("storage fault", "op", op, "error", err)
}

// NopReporter discards all events. Useful when embedding the core
// without a logging subsystem, and as a test default.
type NopReporter struct{}

func (NopReporter) EntityCreated(string, int)              {}
func (NopReporter) EntityUpdated(string, int)              {}
func (NopReporter) EntityDeleted(string, int)              {}
func (NopReporter) ValidationRejected(string, string, string) {}
func (NopReporter) StorageFault(string, error)             {}
