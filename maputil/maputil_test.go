package maputil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/maputil"
)

func TestGetOrAdd(t *testing.T) {
	t.Run("NewKey", func(t *testing.T) {
		m := map[string]int{}
		got := maputil.GetOrAdd(m, "newKey", 42)

		assert.Equal(t, 42, got)
		assert.Equal(t, map[string]int{"newKey": 42}, m)
	})

	t.Run("ExistingKey", func(t *testing.T) {
		m := map[string]int{"existingKey": 100}
		got := maputil.GetOrAdd(m, "existingKey", 42)

		assert.Equal(t, 100, got, "existing value is returned")
		assert.Equal(t, map[string]int{"existingKey": 100}, m, "map is unchanged")
	})

	t.Run("ExistingZeroValue", func(t *testing.T) {
		m := map[string]int{"zero": 0}
		assert.Equal(t, 0, maputil.GetOrAdd(m, "zero", 7))
	})

	t.Run("NamedMapType", func(t *testing.T) {
		type registry map[int][]string
		r := registry{}
		maputil.GetOrAdd(r, 1, []string{"a"})
		assert.Equal(t, []string{"a"}, r[1])
	})

	t.Run("NilMap", func(t *testing.T) {
		assert.PanicsWithValue(t, "maputil.GetOrAdd: map cannot be nil", func() {
			var m map[string]int
			maputil.GetOrAdd(m, "k", 1)
		})
	})
}

func TestTryUpdate(t *testing.T) {
	t.Run("ExistingKey", func(t *testing.T) {
		m := map[string]int{"existingKey": 100}
		assert.True(t, maputil.TryUpdate(m, "existingKey", 200))
		assert.Equal(t, 200, m["existingKey"])
	})

	t.Run("MissingKey", func(t *testing.T) {
		m := map[string]int{}
		assert.False(t, maputil.TryUpdate(m, "nonExistingKey", 42))
		assert.NotContains(t, m, "nonExistingKey")
	})

	t.Run("NilMap", func(t *testing.T) {
		var m map[string]int
		assert.False(t, maputil.TryUpdate(m, "k", 1))
	})
}
