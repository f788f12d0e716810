package event

import "sync"

// retention pins owning registries that have at least one live subscription
// so the collector cannot reclaim them, or their hosts, while somebody is
// still listening. It is the only state shared between unrelated graphs.
var retention = struct {
	mu     sync.Mutex
	pinned map[any]struct{}
}{pinned: make(map[any]struct{})}

func pin(o any) {
	retention.mu.Lock()
	defer retention.mu.Unlock()
	retention.pinned[o] = struct{}{}
}

func unpin(o any) {
	retention.mu.Lock()
	defer retention.mu.Unlock()
	delete(retention.pinned, o)
}

// Pinned returns the number of owning registries currently kept alive by
// their subscriptions.
func Pinned() int {
	retention.mu.Lock()
	defer retention.mu.Unlock()
	return len(retention.pinned)
}

// OwningReference is a shared-identity registry whose subscriptions own the
// registry itself while a host is set. The registry holds its host, so the
// host lives exactly as long as at least one subscription added through the
// registry is neither removed nor invalidated, regardless of any other
// reference to it.
type OwningReference[T any] struct {
	event    Event[T]
	host     any
	retained int
}

// NewOwningReference creates an empty OwningReference hosted by host. A nil
// host disables ownership until SetOwned is called.
func NewOwningReference[T any](host any, opts ...Option) *OwningReference[T] {
	return &OwningReference[T]{event: NewEvent[T](opts...), host: host}
}

// SetOwned replaces the host. Subscriptions added earlier keep owning the
// registry.
func (r *OwningReference[T]) SetOwned(host any) {
	r.host = host
}

// Owned returns the current host.
func (r *OwningReference[T]) Owned() any {
	return r.host
}

// Retained returns how many subscription slots currently own the registry.
func (r *OwningReference[T]) Retained() int {
	return r.retained
}

func (r *OwningReference[T]) Retain() {
	r.retained++
	if r.retained == 1 {
		pin(r)
		r.event.settings.emit(EventRetain, nil)
	}
}

func (r *OwningReference[T]) Release() {
	if r.retained == 0 {
		return
	}
	r.retained--
	if r.retained == 0 {
		unpin(r)
		r.event.settings.emit(EventRelease, nil)
	}
}

func (r *OwningReference[T]) Notify(payload T) { r.event.Notify(payload) }

func (r *OwningReference[T]) Add(s *Subscription[T]) *Subscription[T] {
	r.event.Add(s)
	if r.host != nil {
		s.AddOwnedObject(r)
	}
	return s
}

func (r *OwningReference[T]) AddFunc(handler func(T)) *Subscription[T] {
	return r.Add(NewSubscription[T](nil, handler))
}

func (r *OwningReference[T]) AddOwned(owner Owner, handler func(T)) *Subscription[T] {
	return r.Add(NewSubscription(owner, handler))
}

func (r *OwningReference[T]) Remove(s *Subscription[T]) {
	s.RemoveOwnedObject(r)
	r.event.Remove(s)
}

func (r *OwningReference[T]) RemoveAll() {
	for _, s := range r.event.subscriptions {
		s.RemoveOwnedObject(r)
	}
	r.event.RemoveAll()
}

func (r *OwningReference[T]) Len() int { return r.event.Len() }
