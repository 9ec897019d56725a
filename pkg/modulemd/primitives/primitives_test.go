package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSetSortedDedup(t *testing.T) {
	s := NewStringSet("b", "a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	assert.Equal(t, 3, s.Len())
}

func TestStringSetEqual(t *testing.T) {
	a := NewStringSet("x", "y")
	b := NewStringSet("y", "x")
	assert.True(t, Equal(a, b))
	b.Add("z")
	assert.False(t, Equal(a, b))
}

func TestStringSetDeepCopyIndependence(t *testing.T) {
	a := NewStringSet("x")
	cp := a.DeepCopy()
	cp.Add("y")
	assert.False(t, a.Contains("y"))
	assert.True(t, cp.Contains("y"))
}

func TestGDateParseAndString(t *testing.T) {
	d, err := ParseGDate("2020-12-31")
	assert.NoError(t, err)
	assert.Equal(t, "2020-12-31", d.String())

	_, err = ParseGDate("not-a-date")
	assert.Error(t, err)
}

func TestGDateOrdering(t *testing.T) {
	a, _ := ParseGDate("2020-01-01")
	b, _ := ParseGDate("2021-01-01")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.Equal(a))
}
