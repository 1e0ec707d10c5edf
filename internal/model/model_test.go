package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("projects")
	require.NoError(t, err)
	assert.Equal(t, DomainProjects, d)

	d, err = ParseDomain("timeline")
	require.NoError(t, err)
	assert.Equal(t, DomainTimeline, d)

	_, err = ParseDomain("Projects")
	assert.Error(t, err)
	_, err = ParseDomain("")
	assert.Error(t, err)
}

func TestDomainCategoriesReturnsCopy(t *testing.T) {
	cats := DomainTimeline.Categories()
	require.Equal(t, []Category{CategoryEducation, CategoryExperience, CategoryProject}, cats)

	cats[0] = "mutated"
	assert.Equal(t, CategoryEducation, DomainTimeline.Categories()[0])
	assert.Empty(t, Domain("unknown").Categories())
}

func TestDomainAllows(t *testing.T) {
	tests := []struct {
		domain Domain
		cat    Category
		want   bool
	}{
		{DomainProjects, CategoryWebApplication, true},
		{DomainProjects, CategoryBranding, true},
		{DomainProjects, CategoryEducation, false},
		{DomainTimeline, CategoryExperience, true},
		{DomainTimeline, CategoryUIUXDesign, false},
		{DomainTimeline, "Education", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.domain.Allows(tt.cat), "%s/%s", tt.domain, tt.cat)
	}
}

func TestLinksIsZero(t *testing.T) {
	assert.True(t, Links{}.IsZero())
	assert.False(t, Links{Code: "https://github.com/x"}.IsZero())

	b, err := json.Marshal(ContentRecord{ID: 1, Title: "A", Tags: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"links"`)

	b, err = json.Marshal(ContentRecord{ID: 1, Title: "A", Links: Links{Demo: "https://demo"}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"links":{"demo":"https://demo"}`)
}

func TestContentRecordClone(t *testing.T) {
	orig := ContentRecord{
		ID:      1,
		Tags:    []string{"Go"},
		Details: []string{"d"},
		Images:  []string{"projects/a.png"},
		Detail: &ProjectDetail{
			Client:       &ClientInfo{Name: "Santé Plus"},
			Technologies: []TechGroup{{Title: "Outils", Techs: []string{"React"}}},
			Sharing:      []ShareLink{{Network: "LinkedIn", URL: "https://linkedin.com"}},
			RelatedIDs:   []int{2},
		},
	}
	c := orig.Clone()
	c.Tags[0] = "x"
	c.Details[0] = "x"
	c.Images[0] = "x"
	c.Detail.Client.Name = "x"
	c.Detail.Technologies[0].Techs[0] = "x"
	c.Detail.Sharing[0].URL = "x"
	c.Detail.RelatedIDs[0] = 9

	assert.Equal(t, "Go", orig.Tags[0])
	assert.Equal(t, "d", orig.Details[0])
	assert.Equal(t, "projects/a.png", orig.Images[0])
	assert.Equal(t, "Santé Plus", orig.Detail.Client.Name)
	assert.Equal(t, "React", orig.Detail.Technologies[0].Techs[0])
	assert.Equal(t, "https://linkedin.com", orig.Detail.Sharing[0].URL)
	assert.Equal(t, []int{2}, orig.Detail.RelatedIDs)

	assert.Nil(t, ContentRecord{}.Clone().Detail)
	assert.Nil(t, ContentRecord{}.Clone().Tags)
}

func TestStackClone(t *testing.T) {
	orig := Stack{Techs: []string{"Go"}, Tools: []string{"Git"}}
	c := orig.Clone()
	c.Techs[0] = "x"
	c.Tools[0] = "x"
	assert.Equal(t, Stack{Techs: []string{"Go"}, Tools: []string{"Git"}}, orig)
}

func TestParseThemeType(t *testing.T) {
	th, err := ParseThemeType("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	_, err = ParseThemeType("sepia")
	assert.Error(t, err)
}

func TestThemeColorsForCategory(t *testing.T) {
	c := ThemeColors{Primary: "p", Secondary: "s", Accent: "a", Highlight: "h"}

	assert.Equal(t, "p", c.ForCategory(CategoryEducation))
	assert.Equal(t, "s", c.ForCategory(CategoryExperience))
	assert.Equal(t, "a", c.ForCategory(CategoryProject))
	assert.Equal(t, "h", c.ForCategory(CategoryBranding))
	assert.Equal(t, "h", c.ForCategory(""))
}
