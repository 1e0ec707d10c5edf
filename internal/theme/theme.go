// Package theme holds a visitor's display theme and the palettes behind it.
package theme

import (
	"sync"

	"folioapi/internal/model"
)

var palettes = map[model.ThemeType]model.ThemeColors{
	model.ThemeLight: {
		Background:    "#F5F5DC",
		Primary:       "#A7C7E7",
		Secondary:     "#B5C99A",
		Accent:        "#FCE38A",
		Highlight:     "#FFD3B5",
		Text:          "#333333",
		TextLight:     "#ffffff",
		TextSecondary: "#666666",
		Border:        "#E0E0E0",
		Card:          "#ffffff",
	},
	model.ThemeDark: {
		Background:    "#1A1A2E",
		Primary:       "#4B7BE5",
		Secondary:     "#6A8D73",
		Accent:        "#FFC857",
		Highlight:     "#E05263",
		Text:          "#F2F2F2",
		TextLight:     "#F2F2F2",
		TextSecondary: "#666666",
		Border:        "#E0E0E0",
		Card:          "#262639",
	},
}

// Palette returns the colours of t. Unknown themes get the light palette.
func Palette(t model.ThemeType) model.ThemeColors {
	if c, ok := palettes[t]; ok {
		return c
	}
	return palettes[model.ThemeLight]
}

// Store is the theme state of one session. It starts on light.
type Store struct {
	mu      sync.RWMutex
	current model.ThemeType
}

// New returns a Store set to initial, or light when initial is not a
// known theme.
func New(initial model.ThemeType) *Store {
	if _, err := model.ParseThemeType(string(initial)); err != nil {
		initial = model.ThemeLight
	}
	return &Store{current: initial}
}

// Current returns the active theme.
func (s *Store) Current() model.ThemeType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set switches to t. Unknown themes are rejected and leave the state as is.
func (s *Store) Set(t model.ThemeType) error {
	if _, err := model.ParseThemeType(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *Store) Toggle() model.ThemeType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == model.ThemeDark {
		s.current = model.ThemeLight
	} else {
		s.current = model.ThemeDark
	}
	return s.current
}

// Colors returns the palette of the active theme.
func (s *Store) Colors() model.ThemeColors {
	return Palette(s.Current())
}
