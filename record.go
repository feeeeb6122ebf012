package streams

import "github.com/creastat/streams/core"

// Record is a schema-less value keyed by field name. The helpers below
// re-express single-field projection and filtering over explicit keyed
// lookup, with defined behavior when the key is absent.
type Record map[string]any

// clone copies a record before mutation so upstream holders never observe
// the rewrite.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FilterField keeps only the records whose field key holds boolean true.
// Records without the field, or with a non-boolean value, are dropped.
func FilterField(source core.Observable[Record], key string) core.Observable[Record] {
	return core.Filter(source, func(r Record) bool {
		v, ok := r[key]
		if !ok {
			return false
		}
		b, ok := v.(bool)
		return ok && b
	})
}

// MapField rewrites field from into field to through fn. A record without
// the from field passes through unchanged.
func MapField(source core.Observable[Record], from, to string, fn func(any) any) core.Observable[Record] {
	return core.Map(source, func(r Record) Record {
		v, ok := r[from]
		if !ok {
			return r
		}
		out := r.clone()
		out[to] = fn(v)
		return out
	})
}

// SetField overwrites field key in every record with a constant
// replacement. The replacement may be literal or deferred; a deferred one
// is resolved once, on the first record.
func SetField(source core.Observable[Record], key string, value *Value[any]) core.Observable[Record] {
	return core.Map(source, func(r Record) Record {
		out := r.clone()
		out[key] = value.Get()
		return out
	})
}

// Wrap boxes every element into a single-field record.
func Wrap[T any](source core.Observable[T], key string) core.Observable[Record] {
	return core.Map(source, func(v T) Record {
		return Record{key: v}
	})
}

// Pluck projects the value held under key. Records without the field are
// skipped.
func Pluck(source core.Observable[Record], key string) core.Observable[any] {
	withKey := core.Filter(source, func(r Record) bool {
		_, ok := r[key]
		return ok
	})
	return core.Map(withKey, func(r Record) any {
		return r[key]
	})
}
