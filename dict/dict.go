// Package dict provides mapping builders and the mapping arm of the
// membership predicate.
//
// Generated code leans on these for the lookup-table patterns its source
// language writes as comprehensions, e.g. building a position table from an
// ordering:
//
//	position := dict.FromPairs(seqPairs) // last value wins on duplicate keys
package dict

// Pair is one key/value entry, as consumed by FromPairs and produced by
// Entries.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromPairs builds a map from a list of key/value pairs. If the same key
// appears multiple times, the last value wins.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.Key] = p.Value
	}
	return out
}

// Zip builds a map by pairing keys and values positionally. Excess elements
// from the longer input are ignored.
func Zip[K comparable, V any](keys []K, values []V) map[K]V {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	out := make(map[K]V, n)
	for i := 0; i < n; i++ {
		out[keys[i]] = values[i]
	}
	return out
}

// Clone returns an independent copy of d.
func Clone[K comparable, V any](d map[K]V) map[K]V {
	out := make(map[K]V, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// ContainsKey reports whether key is present. This is the mapping arm of
// the membership predicate; membership tests a key, never a value.
func ContainsKey[K comparable, V any](d map[K]V, key K) bool {
	_, ok := d[key]
	return ok
}

// Keys returns the keys in unspecified order.
func Keys[K comparable, V any](d map[K]V) []K {
	out := make([]K, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	return out
}

// Values returns the values in unspecified order.
func Values[K comparable, V any](d map[K]V) []V {
	out := make([]V, 0, len(d))
	for _, v := range d {
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in unspecified order.
func Entries[K comparable, V any](d map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(d))
	for k, v := range d {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// Insert stores val under key.
func Insert[K comparable, V any](d map[K]V, key K, val V) {
	d[key] = val
}

// RemoveKey deletes key and returns its previous value, if any.
func RemoveKey[K comparable, V any](d map[K]V, key K) (V, bool) {
	v, ok := d[key]
	if ok {
		delete(d, key)
	}
	return v, ok
}
