package nsvca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOmitsTrailingEmptySegments(t *testing.T) {
	assert.Equal(t, "foo:1.0:20230101000000", Format("foo", "1.0", 20230101000000, "", ""))
	assert.Equal(t, "foo:1.0:20230101000000:abcdef12", Format("foo", "1.0", 20230101000000, "abcdef12", ""))
	assert.Equal(t, "foo:1.0:20230101000000:abcdef12:x86_64", Format("foo", "1.0", 20230101000000, "abcdef12", "x86_64"))
}

func TestMatchGlob(t *testing.T) {
	assert.True(t, Match("foo:1.0:1:abc:x86_64", "foo:*"))
	assert.True(t, Match("foo:1.0:1:abc:x86_64", "foo:1.0:*"))
	assert.False(t, Match("foo:1.0:1:abc:x86_64", "bar:*"))
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := Placeholder("mod", "stream1")
	b := Placeholder("mod", "stream1")
	c := Placeholder("mod", "stream2")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^[a-z]+-[a-z]+$`, a)
}

func TestPlaceholderUniqueAvoidsCollision(t *testing.T) {
	taken := map[string]bool{Placeholder("seed"): true}
	name := PlaceholderUnique(func(n string) bool { return taken[n] }, "seed")
	assert.NotEqual(t, Placeholder("seed"), name)
	assert.Contains(t, name, Placeholder("seed")+"-")
}
