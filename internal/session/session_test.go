package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
)

func newSet(t *testing.T) *catalog.Set {
	t.Helper()
	projects, err := catalog.New(model.DomainProjects, []model.ContentRecord{
		{ID: 1, Title: "Alpha", Category: model.CategoryWebApplication},
	})
	require.NoError(t, err)
	timeline, err := catalog.New(model.DomainTimeline, []model.ContentRecord{
		{ID: 1, Title: "Master", Category: model.CategoryEducation},
	})
	require.NoError(t, err)
	return catalog.NewSet(projects, timeline)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	reg, err := NewRegistry(newSet(t), 10, model.ThemeDark)
	require.NoError(t, err)

	s := reg.GetOrCreate("abc")
	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, model.ThemeDark, s.Theme.Current())
	assert.Same(t, s, reg.GetOrCreate("abc"))
	assert.Equal(t, 1, reg.Len())

	sel, ok := s.Selection(model.DomainProjects)
	require.True(t, ok)
	assert.True(t, sel.Select(1))

	other := reg.GetOrCreate("def")
	otherSel, _ := other.Selection(model.DomainProjects)
	_, selected := otherSel.Current()
	assert.False(t, selected, "sessions are isolated")
}

func TestRegistry_Eviction(t *testing.T) {
	reg, err := NewRegistry(newSet(t), 2, model.ThemeLight)
	require.NoError(t, err)

	reg.GetOrCreate("a")
	reg.GetOrCreate("b")
	reg.GetOrCreate("c")

	assert.Equal(t, 2, reg.Len())
	_, ok := reg.Get("a")
	assert.False(t, ok)
	_, ok = reg.Get("c")
	assert.True(t, ok)
}

func TestNewRegistry_DefaultCapacity(t *testing.T) {
	reg, err := NewRegistry(newSet(t), 0, "")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, reg.GetOrCreate("x").Theme.Current())
	assert.Equal(t, model.ThemeLight, reg.DefaultTheme())
}

func TestRegistry_GetDoesNotCreate(t *testing.T) {
	reg, err := NewRegistry(newSet(t), 4, model.ThemeDark)
	require.NoError(t, err)

	_, ok := reg.Get("ghost")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, model.ThemeDark, reg.DefaultTheme())
}
