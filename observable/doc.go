// Package observable provides values that announce their own mutation.
//
// An Observable holds a value and two registries: BeforeChange fires while
// the old value is still stored, AfterChange fires once the new value is in
// place. Both receive a Change carrying the old and the new value.
//
//	x := observable.New(0)
//	observable.Subscribe(&x, func(c observable.Change[int]) {
//		fmt.Println(c.Old, "->", c.New)
//	})
//	x.Set(1) // 0 -> 1
//
// Observable is a value type. Copying one copies the value but shares the
// registries until Unshare is called on either copy.
//
// Derived observables are reference types built on top of any Source:
//
//   - Proxy mirrors a source and re-fires its events.
//   - Transform mirrors a source through a mapping function.
//   - Reference gives an Observable a stable identity.
//   - PairObservable combines two sources.
//   - ChainProxy follows a path through a graph of observables and
//     re-subscribes whenever the path leads somewhere else.
//
// Derived observables subscribe to their sources weakly: once a derived
// observable is unreachable it stops firing, and its subscriptions are swept
// the next time the source notifies. A ChainProxy additionally stays alive
// for as long as anybody holds a live subscription to its own events.
//
// Nothing here is safe for concurrent use. Notification is synchronous and
// handler panics propagate to whoever triggered the change.
package observable
