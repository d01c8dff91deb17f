package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Distinct([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Distinct([]string{}))
}

func TestCount(t *testing.T) {
	n := Count([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 1 })
	assert.Equal(t, int64(3), n)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 }))
	assert.Empty(t, Filter([]int(nil), func(int) bool { return true }))
}
