// Package observability provides event-based diagnostics for subscription
// registries and observables. Level values align with OpenTelemetry
// SeverityNumbers for zero-translation compatibility with OTel collectors.
//
// Diagnostics never influence notification: observers only see what the
// event and observable packages report about sweeps, retention and
// re-targeting.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is the severity of a diagnostics event. Values are OTel
// SeverityNumbers so a collector can take them as they are.
//
// Registry bookkeeping (sweeps, retention) is reported at LevelVerbose;
// structural changes of an observable graph (unshare, chain re-targeting)
// at LevelInfo. LevelWarning and LevelError are free for observers and
// callers that emit their own events.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
	LevelWarning Level = 13
	LevelError   Level = 17
)

// String returns the OTel severity text of the range l falls in.
func (l Level) String() string {
	switch {
	case l < LevelVerbose:
		return "TRACE"
	case l < LevelInfo:
		return "DEBUG"
	case l < LevelWarning:
		return "INFO"
	case l < LevelError:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel returns the slog level used when l is logged.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l < LevelInfo:
		return slog.LevelDebug
	case l < LevelWarning:
		return slog.LevelInfo
	case l < LevelError:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event. Each package defines its own
// constants using this type (e.g., "event.sweep", "chain.retarget").
type EventType string

// Event is a diagnostics event emitted by registries and observables. Fields
// map to OTel LogRecord fields: Type→EventName, Level→SeverityNumber,
// Timestamp→Timestamp, Source→InstrumentationScope, Data→Attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives diagnostics events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// Emit sends an event built from the arguments to obs, stamping the current
// time. A nil observer drops the event.
func Emit(obs Observer, level Level, typ EventType, source string, data map[string]any) {
	if obs == nil {
		return
	}
	obs.OnEvent(context.Background(), Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}
