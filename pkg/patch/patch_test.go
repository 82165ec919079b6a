package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("空请求体", func(t *testing.T) {
		doc, err := Parse([]byte("  "))
		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("非对象", func(t *testing.T) {
		_, err := Parse([]byte(`[1,2]`))
		assert.Error(t, err)
	})

	t.Run("出现与null", func(t *testing.T) {
		doc, err := Parse([]byte(`{"title":"Emma","isbn":null}`))
		require.NoError(t, err)

		assert.True(t, doc.Has("title"))
		assert.True(t, doc.Has("isbn"))
		assert.False(t, doc.Has("price"))
		assert.True(t, doc.IsNull("isbn"))
		assert.False(t, doc.IsNull("title"))
		assert.Equal(t, []string{"isbn"}, doc.NullKeys("title", "isbn", "price"))
	})
}

func TestField(t *testing.T) {
	doc, err := Parse([]byte(`{"website":null,"name":"Penguin"}`))
	require.NoError(t, err)

	name := "Penguin"
	var website *string

	t.Run("Value", func(t *testing.T) {
		dst := "old"
		Value(&name).Apply(&dst)
		assert.Equal(t, "Penguin", dst)

		Value[string](nil).Apply(&dst)
		assert.Equal(t, "Penguin", dst, "未设置不覆盖")
	})

	t.Run("Nullable清空", func(t *testing.T) {
		old := "https://old.example.com"
		dst := &old
		Nullable(doc, "website", website).Apply(&dst)
		assert.Nil(t, dst)
	})

	t.Run("Nullable未出现不修改", func(t *testing.T) {
		old := "keep"
		dst := &old
		Nullable(doc, "biography", website).Apply(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "keep", *dst)
	})
}
