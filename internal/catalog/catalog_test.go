package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedCatalog(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	require.NotEmpty(t, cat.List())

	for _, e := range cat.List() {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Name)
		assert.GreaterOrEqual(t, e.Price, 0.0)
		assert.GreaterOrEqual(t, e.Inventory, 0)
	}
}

func TestFind(t *testing.T) {
	cat, err := Parse([]byte(`[{"id":"a","name":"A","price":1,"inventory":2}]`))
	require.NoError(t, err)

	e, ok := cat.Find("a")
	require.True(t, ok)
	assert.Equal(t, Entry{ID: "a", Name: "A", Price: 1, Inventory: 2}, e)

	_, ok = cat.Find("b")
	assert.False(t, ok)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte(`{"not":"a list"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"id":"a"},{"id":"a"}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"name":"missing id"}]`))
	assert.Error(t, err)
}
