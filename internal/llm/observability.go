package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about model calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ZapObserver logs call events at debug level, failures at warn.
type ZapObserver struct {
	log *zap.Logger
}

func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log.Named("llm")}
}

func (o *ZapObserver) OnCallComplete(e CallEvent) {
	fields := []zap.Field{
		zap.String("model", e.Model),
		zap.Int64("latency_ms", e.LatencyMs),
		zap.Int("attempts", e.Attempts),
	}
	if e.Success {
		o.log.Debug("llm call", fields...)
		return
	}
	o.log.Warn("llm call failed", append(fields, zap.String("code", e.ErrorCode))...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
