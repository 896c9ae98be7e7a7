package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	m := Map{"a": 1, "b": "x"}
	c := m.Clone()
	c["a"] = 2
	assert.Equal(t, 1, m["a"])

	assert.Nil(t, Map(nil).Clone())
}

func TestMerge(t *testing.T) {
	base := Map{"format": "CSV", "delimiter": ","}
	merged := base.Merge(Map{"format": "JSON"})

	assert.Equal(t, Map{"format": "JSON", "delimiter": ","}, merged)
	assert.Equal(t, "CSV", base["format"]) // base untouched

	assert.Equal(t, Map{"a": 1}, Map(nil).Merge(Map{"a": 1}))
}

func TestSortedKeys(t *testing.T) {
	m := Map{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, m.SortedKeys())
}

func TestTypedGetters(t *testing.T) {
	m := Map{"s": "val", "n": 7, "b": true}

	got, ok := m.GetString("s")
	assert.True(t, ok)
	assert.Equal(t, "val", got)

	_, ok = m.GetString("n")
	assert.False(t, ok)

	assert.Equal(t, "val", m.StringOr("s", "fallback"))
	assert.Equal(t, "fallback", m.StringOr("missing", "fallback"))
	assert.True(t, m.BoolOr("b", false))
	assert.False(t, m.BoolOr("missing", false))
}
