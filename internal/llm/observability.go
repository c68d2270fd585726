package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent is the metadata emitted for one finished model call.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives call events. The client emits exactly one event per
// Generate, success or not.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one line per call event, enabled by JARVIS_LLM_LOG_CALLS.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
