package observability

import "context"

// NoOpObserver discards every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// MultiObserver hands each event to several observers in turn, for example
// a SlogObserver for everything and a LevelFilter in front of a
// TraceObserver for graph changes only.
type MultiObserver struct {
	targets []Observer
}

// NewMultiObserver combines targets, skipping nil entries.
func NewMultiObserver(targets ...Observer) *MultiObserver {
	m := &MultiObserver{}
	for _, target := range targets {
		if target != nil {
			m.targets = append(m.targets, target)
		}
	}
	return m
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, target := range m.targets {
		target.OnEvent(ctx, event)
	}
}

// LevelFilter forwards only events at or above Min.
type LevelFilter struct {
	Min  Level
	Next Observer
}

func (f LevelFilter) OnEvent(ctx context.Context, event Event) {
	if f.Next == nil || event.Level < f.Min {
		return
	}
	f.Next.OnEvent(ctx, event)
}
