package streams

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/creastat/streams/core"
	"github.com/creastat/streams/streamtest"
)

func concat(l string, r int) string {
	return fmt.Sprintf("%s%d", l, r)
}

func TestTemporalJoinSuppressedBeforeFirstRight(t *testing.T) {
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()
	clock := streamtest.NewManualClock(time.Unix(0, 0))

	rec := streamtest.NewRecorder[string]()
	TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

	left.OnNext("early")
	if len(rec.Values()) != 0 {
		t.Fatalf("left emission paired before any right value: %v", rec.Values())
	}

	clock.Advance(time.Second)
	right.OnNext(1)
	clock.Advance(time.Second)
	left.OnNext("x")
	if len(rec.Values()) != 1 || rec.Values()[0] != "x1" {
		t.Fatalf("expected [x1], got %v", rec.Values())
	}
}

func TestTemporalJoinPairsWithMostRecentRight(t *testing.T) {
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()
	clock := streamtest.NewManualClock(time.Unix(0, 0))

	rec := streamtest.NewRecorder[string]()
	TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

	right.OnNext(1)
	clock.Advance(time.Second)
	left.OnNext("a")
	clock.Advance(time.Second)
	left.OnNext("b")

	want := []string{"a1", "b1"}
	values := rec.Values()
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("value %d: expected %q, got %q", i, w, values[i])
		}
	}
}

func TestTemporalJoinConcreteScenario(t *testing.T) {
	// Right emits 5 at t=5, left emits "x" at t=10: output is "x5" once.
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()
	clock := streamtest.NewManualClock(time.Unix(0, 0))

	rec := streamtest.NewRecorder[string]()
	TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

	clock.Set(time.Unix(5, 0))
	right.OnNext(5)
	clock.Set(time.Unix(10, 0))
	left.OnNext("x")

	values := rec.Values()
	if len(values) != 1 || values[0] != "x5" {
		t.Fatalf("expected [x5], got %v", values)
	}
}

func TestTemporalJoinSuppressesStaleLeft(t *testing.T) {
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()
	clock := streamtest.NewManualClock(time.Unix(0, 0))

	rec := streamtest.NewRecorder[string]()
	TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

	right.OnNext(1)
	clock.Advance(time.Second)
	left.OnNext("a")
	clock.Advance(time.Second)
	// A fresher right value makes the cached left pairing stale.
	right.OnNext(2)

	values := rec.Values()
	if len(values) != 1 || values[0] != "a1" {
		t.Fatalf("expected only [a1], got %v", values)
	}

	clock.Advance(time.Second)
	left.OnNext("b")
	values = rec.Values()
	if len(values) != 2 || values[1] != "b2" {
		t.Fatalf("expected [a1 b2], got %v", values)
	}
}

func TestTemporalJoinTiedTimestampRightRefreshEmits(t *testing.T) {
	// With a frozen clock a right-side refresh ties the cached left
	// timestamp, passes the guard, and produces an extra emission. The
	// literal comparison semantics are intentional; see TemporalJoin docs.
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()
	clock := streamtest.NewManualClock(time.Unix(0, 0))

	rec := streamtest.NewRecorder[string]()
	TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

	right.OnNext(1)
	clock.Advance(time.Second)
	left.OnNext("a")
	right.OnNext(2) // same instant as "a"

	want := []string{"a1", "a2"}
	values := rec.Values()
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("value %d: expected %q, got %q", i, w, values[i])
		}
	}
}

func TestTemporalJoinFailFast(t *testing.T) {
	for _, side := range []string{"left", "right"} {
		t.Run(side, func(t *testing.T) {
			left := core.NewSubject[string]()
			right := core.NewSubject[int]()
			clock := streamtest.NewManualClock(time.Unix(0, 0))

			rec := streamtest.NewRecorder[string]()
			TemporalJoinClock[string, int, string](left, right, concat, clock.Now).Subscribe(rec)

			boom := errors.New("boom")
			if side == "left" {
				left.OnError(boom)
				if right.HasObservers() {
					t.Error("right still subscribed after left failure")
				}
			} else {
				right.OnError(boom)
				if left.HasObservers() {
					t.Error("left still subscribed after right failure")
				}
			}

			if rec.Err() != boom {
				t.Fatalf("expected boom, got %v", rec.Err())
			}
		})
	}
}

func TestTemporalJoinDefaultClock(t *testing.T) {
	left := core.NewSubject[string]()
	right := core.NewSubject[int]()

	rec := streamtest.NewRecorder[string]()
	TemporalJoin[string, int, string](left, right, concat).Subscribe(rec)

	right.OnNext(7)
	time.Sleep(time.Millisecond)
	left.OnNext("v")

	values := rec.Values()
	if len(values) != 1 || values[0] != "v7" {
		t.Fatalf("expected [v7], got %v", values)
	}
}

// Model check: for a random interleaving of left and right emissions with
// a strictly advancing clock, the join behaves like the reference
// latest-pair-then-guard construction.
func TestPropertyTemporalJoinMatchesModel(t *testing.T) {
	type step struct {
		isLeft bool
		value  int
	}

	rapid.Check(t, func(rt *rapid.T) {
		steps := rapid.SliceOfN(rapid.Custom(func(rt *rapid.T) step {
			return step{
				isLeft: rapid.Bool().Draw(rt, "isLeft"),
				value:  rapid.IntRange(0, 99).Draw(rt, "value"),
			}
		}), 1, 20).Draw(rt, "steps")

		left := core.NewSubject[int]()
		right := core.NewSubject[int]()
		clock := streamtest.NewManualClock(time.Unix(0, 0))

		rec := streamtest.NewRecorder[[2]int]()
		TemporalJoinClock[int, int, [2]int](left, right, func(l, r int) [2]int {
			return [2]int{l, r}
		}, clock.Now).Subscribe(rec)

		var expected [][2]int
		var leftAt, rightAt time.Time
		var latestLeft, latestRight int
		hasLeft, hasRight := false, false

		for _, s := range steps {
			clock.Advance(time.Second)
			now := clock.Now()
			if s.isLeft {
				latestLeft, leftAt, hasLeft = s.value, now, true
			} else {
				latestRight, rightAt, hasRight = s.value, now, true
			}
			if hasLeft && hasRight && !leftAt.Before(rightAt) {
				expected = append(expected, [2]int{latestLeft, latestRight})
			}
			if s.isLeft {
				left.OnNext(s.value)
			} else {
				right.OnNext(s.value)
			}
		}

		values := rec.Values()
		if len(values) != len(expected) {
			rt.Fatalf("expected %v, got %v", expected, values)
		}
		for i, want := range expected {
			if values[i] != want {
				rt.Fatalf("emission %d: expected %v, got %v", i, want, values[i])
			}
		}
	})
}
