package observable_test

import (
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/observable/observable"
)

const (
	testTimeout = 2 * time.Second
	testTick    = 10 * time.Millisecond
)

func TestProxy_MirrorsSource(t *testing.T) {
	o := observable.New(1)
	p := observable.NewProxy[int](&o)
	require.Equal(t, 1, p.Value())

	var before, after []observable.Change[int]
	p.BeforeChange().AddFunc(func(c observable.Change[int]) {
		assert.Equal(t, 1, p.Value(), "proxy still reports the old value before the change")
		before = append(before, c)
	})
	p.AfterChange().AddFunc(func(c observable.Change[int]) {
		assert.Equal(t, 2, p.Value())
		after = append(after, c)
	})

	o.Set(2)

	want := []observable.Change[int]{{Old: 1, New: 2}}
	assert.Equal(t, want, before)
	assert.Equal(t, want, after)
}

func TestProxy_OwnRegistries(t *testing.T) {
	o := observable.New(1)
	p := observable.NewProxy[int](&o)
	calls := 0
	p.AfterChange().AddFunc(func(observable.Change[int]) { calls++ })

	assert.Equal(t, 1, o.AfterChange().Len(), "the source only holds the proxy's forwarding subscription")

	o.AfterChange().RemoveAll()
	o.Set(2)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, p.Value(), "a detached proxy keeps its last value")
}

//go:noinline
func subscribeThroughTemporaryProxy(o *observable.Observable[int], calls *int) {
	p := observable.NewProxy[int](o)
	p.AfterChange().AddFunc(func(observable.Change[int]) { *calls++ })
	o.Set(1)
	runtime.KeepAlive(p)
}

func TestProxy_CollectedWhenUnreachable(t *testing.T) {
	o := observable.New(0)
	calls := 0
	subscribeThroughTemporaryProxy(&o, &calls)
	require.Equal(t, 1, calls)

	require.Eventually(t, func() bool {
		runtime.GC()
		o.Set(o.Value() + 1)
		return o.AfterChange().Len() == 0 && o.BeforeChange().Len() == 0
	}, testTimeout, testTick, "the source should sweep the forwarding subscriptions of a collected proxy")

	last := calls
	o.Set(-1)
	assert.Equal(t, last, calls)
}

func TestTransform_MapsValueAndChanges(t *testing.T) {
	o := observable.New(7)
	s := observable.Map[int](&o, strconv.Itoa)
	require.Equal(t, "7", s.Value())

	var before, after []observable.Change[string]
	s.BeforeChange().AddFunc(func(c observable.Change[string]) { before = append(before, c) })
	s.AfterChange().AddFunc(func(c observable.Change[string]) {
		assert.Equal(t, "42", s.Value())
		after = append(after, c)
	})

	o.Set(42)

	want := []observable.Change[string]{{Old: "7", New: "42"}}
	assert.Equal(t, want, before)
	assert.Equal(t, want, after)
}

func TestTransform_Chained(t *testing.T) {
	o := observable.New("hello")
	upper := observable.Map[string](&o, strings.ToUpper)
	length := observable.Map[string](upper, func(s string) int { return len(s) })

	o.Set("hi")

	assert.Equal(t, "HI", upper.Value())
	assert.Equal(t, 2, length.Value())
}

func TestReference_ReadsAndWritesThrough(t *testing.T) {
	o := observable.New(1)
	r := observable.ReferenceTo(&o)
	var got []observable.Change[int]
	observable.Subscribe(r, func(c observable.Change[int]) { got = append(got, c) })

	r.Set(2)
	assert.Equal(t, 2, o.Value())

	o.Set(3)
	assert.Equal(t, 3, r.Value())

	assert.Equal(t, []observable.Change[int]{{Old: 1, New: 2}, {Old: 2, New: 3}}, got)
}

func TestReference_OwnsStorage(t *testing.T) {
	r := observable.NewReference("a")
	alias := r
	var seen []string
	observable.SubscribeValue(alias, func(v string) { seen = append(seen, v) })

	r.Set("b")

	assert.Equal(t, "b", alias.Value())
	assert.Equal(t, []string{"b"}, seen)
}

func TestReference_IsWritable(t *testing.T) {
	var w observable.Writable[int] = observable.NewReference(0)
	w.Set(5)
	assert.Equal(t, 5, w.Value())
}

func TestPair_FullName(t *testing.T) {
	first := observable.New("John")
	last := observable.New("Smith")
	pair := observable.Pair[string, string](&first, &last)
	full := observable.Map(pair, func(names observable.Tuple[string, string]) string {
		return names.First + " " + names.Second
	})
	require.Equal(t, "John Smith", full.Value())

	var got []observable.Change[string]
	observable.Subscribe(full, func(c observable.Change[string]) { got = append(got, c) })

	first.Set("Jane")
	last.Set("Doe")

	assert.Equal(t, "Jane Doe", full.Value())
	assert.Equal(t, []observable.Change[string]{
		{Old: "John Smith", New: "Jane Smith"},
		{Old: "Jane Smith", New: "Jane Doe"},
	}, got)
}

func TestPair_BeforeChangeHoldsOtherSide(t *testing.T) {
	a := observable.New(1)
	b := observable.New("x")
	p := observable.Pair[int, string](&a, &b)

	var before []observable.Change[observable.Tuple[int, string]]
	p.BeforeChange().AddFunc(func(c observable.Change[observable.Tuple[int, string]]) {
		before = append(before, c)
	})

	b.Set("y")

	require.Len(t, before, 1)
	assert.Equal(t, observable.Tuple[int, string]{First: 1, Second: "x"}, before[0].Old)
	assert.Equal(t, observable.Tuple[int, string]{First: 1, Second: "y"}, before[0].New)
	assert.Equal(t, observable.Tuple[int, string]{First: 1, Second: "y"}, p.Value())
}
