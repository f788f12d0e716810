package observable

import (
	"reflect"

	"github.com/tailored-agentic-units/observable/event"
)

// Source is anything with a readable value and before/after change events.
type Source[T any] interface {
	Value() T
	BeforeChange() event.Registry[Change[T]]
	AfterChange() event.Registry[Change[T]]
}

// Writable is a Source whose value can be assigned.
type Writable[T any] interface {
	Source[T]
	Set(v T)
}

// Subscribe adds handler to src's AfterChange.
func Subscribe[T any](src Source[T], handler func(Change[T])) *event.Subscription[Change[T]] {
	return src.AfterChange().AddFunc(handler)
}

// SubscribeValue adds a handler that only receives the new value to src's
// AfterChange.
func SubscribeValue[T any](src Source[T], handler func(T)) *event.Subscription[Change[T]] {
	return src.AfterChange().AddFunc(func(c Change[T]) { handler(c.New) })
}

// Unsubscribe removes s from src's AfterChange.
func Unsubscribe[T any](src Source[T], s *event.Subscription[Change[T]]) {
	src.AfterChange().Remove(s)
}

// isNil reports whether src is nil or a typed nil pointer.
func isNil[T any](src Source[T]) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
