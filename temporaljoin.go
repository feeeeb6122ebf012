package streams

import (
	"time"

	"github.com/creastat/streams/core"
)

// joinPair is the continuously refreshed latest-of-both cache feeding the
// temporal join's timestamp guard.
type joinPair[L, R any] struct {
	left  core.Timestamped[L]
	right core.Timestamped[R]
}

// TemporalJoin pairs every left emission with the most recent right
// value, guarded by emission time: a pairing is forwarded only while the
// left value's timestamp is not older than the right value's. Output is
// suppressed entirely until the right source has emitted at least once.
// Failure on either side propagates immediately and tears down the other
// subscription.
//
// The guard compares raw clock readings. A right-side refresh whose
// timestamp ties the cached left timestamp (coarse or non-monotonic
// clocks) also passes the guard and yields an extra emission; the
// combinator keeps the literal comparison semantics rather than a
// stricter left-only trigger.
func TemporalJoin[L, R, O any](left core.Observable[L], right core.Observable[R], combine func(L, R) O) core.Observable[O] {
	return TemporalJoinClock(left, right, combine, time.Now)
}

// TemporalJoinClock is TemporalJoin with an explicit clock. Both sides
// are timestamped with the same clock, independently per emission.
func TemporalJoinClock[L, R, O any](left core.Observable[L], right core.Observable[R], combine func(L, R) O, clock core.Clock) core.Observable[O] {
	taggedLeft := core.Timestamp(left, clock)
	taggedRight := core.Timestamp(right, clock)

	pairs := core.CombineLatest(taggedLeft, taggedRight,
		func(l core.Timestamped[L], r core.Timestamped[R]) joinPair[L, R] {
			return joinPair[L, R]{left: l, right: r}
		})

	fresh := core.Filter(pairs, func(p joinPair[L, R]) bool {
		return !p.left.At.Before(p.right.At)
	})

	return core.Map(fresh, func(p joinPair[L, R]) O {
		return combine(p.left.Value, p.right.Value)
	})
}
