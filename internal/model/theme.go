package model

import "fmt"

// ThemeType is the display theme of a visitor session.
type ThemeType string

const (
	ThemeLight ThemeType = "light"
	ThemeDark  ThemeType = "dark"
)

// ParseThemeType validates a theme name.
func ParseThemeType(s string) (ThemeType, error) {
	switch ThemeType(s) {
	case ThemeLight, ThemeDark:
		return ThemeType(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// ThemeColors is the palette a renderer applies for one theme.
type ThemeColors struct {
	Background    string `json:"background"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Highlight     string `json:"highlight"`
	Text          string `json:"text"`
	TextLight     string `json:"text_light"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
	Card          string `json:"card"`
}

// ForCategory returns the accent colour used to mark records of a category.
func (c ThemeColors) ForCategory(cat Category) string {
	switch cat {
	case CategoryEducation:
		return c.Primary
	case CategoryExperience:
		return c.Secondary
	case CategoryProject:
		return c.Accent
	default:
		return c.Highlight
	}
}
