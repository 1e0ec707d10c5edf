package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"folioapi/internal/model"
	"folioapi/internal/search"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default is french", want: language.French},
		{name: "query wins and persists", query: "en", cookie: "fr", accept: "fr-FR", want: language.English, wantPersist: true},
		{name: "regional query value", query: "en-GB", want: language.English, wantPersist: true},
		{name: "unsupported query falls through to cookie", query: "de", cookie: "en", want: language.English},
		{name: "cookie before header", cookie: "en", accept: "fr", want: language.English},
		{name: "accept-language match", accept: "en-US,en;q=0.9", want: language.English},
		{name: "accept-language unsupported", accept: "ja-JP", want: language.French},
		{name: "garbage header", accept: ";;;", want: language.French},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, persist := ResolveTag(tt.query, tt.cookie, tt.accept)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPersist, persist)
		})
	}
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("fr-CA")
	assert.True(t, ok)
	assert.Equal(t, language.French, tag)

	_, ok = ParseTag("not a tag!")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Formation", CategoryLabel(language.French, model.CategoryEducation))
	assert.Equal(t, "Education", CategoryLabel(language.English, model.CategoryEducation))
	assert.Equal(t, "Design UI/UX", CategoryLabel(language.French, model.CategoryUIUXDesign))
	assert.Equal(t, "Alphabétique", SortLabel(language.French, search.SortAlphabetical))
	assert.Equal(t, "Newest", SortLabel(language.English, search.SortNewest))
	assert.Equal(t, []language.Tag{language.French, language.English}, Supported())
}

func TestResolverFallback(t *testing.T) {
	r := NewResolver(language.English)
	assert.Equal(t, language.English, r.Fallback())

	got, _ := r.Resolve("", "", "")
	assert.Equal(t, language.English, got)

	got, _ = r.Resolve("", "", "ja-JP")
	assert.Equal(t, language.English, got)

	got, _ = r.Resolve("", "", "fr-BE")
	assert.Equal(t, language.French, got)

	assert.Equal(t, language.French, NewResolver(language.German).Fallback())
}

func TestText(t *testing.T) {
	assert.Equal(t, "Veuillez remplir tous les champs", Text(language.French, "contact.errorAllFields"))
	assert.Equal(t, "Please enter a valid email address", Text(language.English, "contact.errorEmail"))
}
