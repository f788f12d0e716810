package event

// Reference is a shared-identity registry: every holder of the pointer adds
// to, removes from and notifies the same subscriber list.
type Reference[T any] struct {
	event Event[T]
}

// NewReference creates an empty Reference.
func NewReference[T any](opts ...Option) *Reference[T] {
	return &Reference[T]{event: NewEvent[T](opts...)}
}

// NewReferenceFrom wraps a copy of e. The Reference starts with e's
// subscriptions and diverges from e afterwards.
func NewReferenceFrom[T any](e Event[T]) *Reference[T] {
	return &Reference[T]{event: e}
}

func (r *Reference[T]) Notify(payload T) { r.event.Notify(payload) }

func (r *Reference[T]) Add(s *Subscription[T]) *Subscription[T] { return r.event.Add(s) }

func (r *Reference[T]) AddFunc(handler func(T)) *Subscription[T] { return r.event.AddFunc(handler) }

func (r *Reference[T]) AddOwned(owner Owner, handler func(T)) *Subscription[T] {
	return r.event.AddOwned(owner, handler)
}

func (r *Reference[T]) Remove(s *Subscription[T]) { r.event.Remove(s) }

func (r *Reference[T]) RemoveAll() { r.event.RemoveAll() }

func (r *Reference[T]) Len() int { return r.event.Len() }

// Clone returns an independent Reference holding the same subscriptions as
// r does now.
func (r *Reference[T]) Clone() *Reference[T] {
	return NewReferenceFrom(r.event)
}

// Event returns a value copy of the underlying registry.
func (r *Reference[T]) Event() Event[T] {
	return r.event
}
