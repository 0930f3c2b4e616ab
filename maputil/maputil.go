// Package maputil provides small helpers for Go maps.
package maputil

// GetOrAdd returns the value stored under key. If key is absent, value is
// stored and returned. It panics if m is nil.
func GetOrAdd[M ~map[K]V, K comparable, V any](m M, key K, value V) V {
	if m == nil {
		panic("maputil.GetOrAdd: map cannot be nil")
	}
	if v, ok := m[key]; ok {
		return v
	}
	m[key] = value
	return value
}

// TryUpdate stores value under key only if key is already present, and
// reports whether it did. It never inserts.
func TryUpdate[M ~map[K]V, K comparable, V any](m M, key K, value V) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	m[key] = value
	return true
}
