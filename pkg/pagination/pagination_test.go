package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Page{Page: 1, PerPage: 10}, New(0, 0))
	assert.Equal(t, Page{Page: 1, PerPage: 10}, New(-3, -1))
	assert.Equal(t, Page{Page: 4, PerPage: 500}, New(4, 500), "per_page不设上限")
}

func TestOffsetLimit(t *testing.T) {
	p := New(3, 2)
	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, 2, p.Limit())

	assert.Equal(t, 0, Page{}.Offset())
	assert.Equal(t, DefaultPerPage, Page{}.Limit())
}

func TestOffset_Overflow(t *testing.T) {
	assert.Equal(t, math.MaxInt, New(1<<62, 4).Offset(), "溢出时取最大值而不是负数")
	assert.Equal(t, math.MaxInt, New(2, math.MaxInt).Offset())
	assert.Equal(t, math.MaxInt, New(math.MaxInt, math.MaxInt).Offset())
	assert.Equal(t, 0, New(1, math.MaxInt).Offset())
}

func TestNewMeta(t *testing.T) {
	t.Run("向上取整", func(t *testing.T) {
		m := NewMeta(New(1, 2), 5)
		assert.Equal(t, Meta{Page: 1, PerPage: 2, Total: 5, Pages: 3}, m)
	})

	t.Run("整除", func(t *testing.T) {
		assert.Equal(t, 2, NewMeta(New(1, 5), 10).Pages)
	})

	t.Run("空结果", func(t *testing.T) {
		assert.Equal(t, 0, NewMeta(New(10, 2), 0).Pages)
	})
}
