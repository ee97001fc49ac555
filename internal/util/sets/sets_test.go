package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("/b/", "/a/")
	s.Add("/c/")
	s.Add("/a/")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("/a/"))
	assert.False(t, s.Has("/d/"))
	assert.Equal(t, []string{"/a/", "/b/", "/c/"}, Sorted(s))
}

func TestSetEqual(t *testing.T) {
	assert.True(t, New("x", "y").Equal(New("y", "x")))
	assert.False(t, New("x").Equal(New("x", "y")))
	assert.False(t, New("x").Equal(New("z")))
	assert.True(t, New[string]().Equal(nil))
}
