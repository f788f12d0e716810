// Package event implements subscription registries: ordered lists of
// handlers that are notified synchronously, swept of invalid subscriptions
// on every notification, and safe to mutate from inside their own handlers.
//
// Three registry flavours share one algorithm:
//
//   - Event is a value. Copying it copies the subscriber list; copies share
//     the subscriptions that existed at copy time but never see each other's
//     later Add or Remove.
//   - Reference is a pointer to an Event, so every holder sees one list.
//   - OwningReference is a Reference whose subscriptions keep the registry,
//     and the object hosting it, alive.
//
// A Subscription may be tied to an Owner. Once the owner reports it is no
// longer alive the subscription is invalidated the next time a registry
// looks at it:
//
//	lt := event.NewLifetime()
//	var changed event.Event[int]
//	changed.AddOwned(lt, func(v int) { fmt.Println(v) })
//	changed.Notify(1) // prints 1
//	lt.End()
//	changed.Notify(2) // swept, prints nothing
//
// Registries are not safe for concurrent use. Handlers run to completion
// inside Notify and any panic they raise propagates to the caller.
package event
