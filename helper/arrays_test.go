package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, Remove([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a"}, Remove([]string{"a"}, "x"))
	assert.Empty(t, Remove([]string{"b", "b"}, "b"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"1", "2"}, "2"))
	assert.False(t, Contains([]string{"1", "2"}, "3"))
	assert.False(t, Contains(nil, "1"))
}
