package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"folioapi/internal/model"
	"folioapi/internal/session"
	"folioapi/internal/theme"
)

// ThemeResult is the active theme of a session with its palette.
type ThemeResult struct {
	Theme  model.ThemeType   `json:"theme"`
	Colors model.ThemeColors `json:"colors"`
}

// ThemeService reads and switches a session's theme.
type ThemeService interface {
	Get(ctx context.Context, sessionID string) *ThemeResult
	Set(ctx context.Context, sessionID, name string) (*ThemeResult, error)
	Toggle(ctx context.Context, sessionID string) *ThemeResult
}

type themeService struct {
	sessions *session.Registry
}

// NewThemeService constructs a ThemeService.
func NewThemeService(sessions *session.Registry) ThemeService {
	return &themeService{sessions: sessions}
}

func (s *themeService) snapshot(sessionID string) *ThemeResult {
	st := s.sessions.GetOrCreate(sessionID).Theme
	t := st.Current()
	return &ThemeResult{Theme: t, Colors: st.Colors()}
}

func (s *themeService) Get(ctx context.Context, sessionID string) *ThemeResult {
	_, span := startSpan(ctx, "ThemeService.Get")
	defer span.End()

	if _, ok := s.sessions.Get(sessionID); !ok {
		t := s.sessions.DefaultTheme()
		return &ThemeResult{Theme: t, Colors: theme.Palette(t)}
	}
	return s.snapshot(sessionID)
}

func (s *themeService) Set(ctx context.Context, sessionID, name string) (*ThemeResult, error) {
	_, span := startSpan(ctx, "ThemeService.Set")
	defer span.End()
	span.SetAttributes(attribute.String("theme.requested", name))

	if err := s.sessions.GetOrCreate(sessionID).Theme.Set(model.ThemeType(name)); err != nil {
		return nil, fail(span, ErrUnknownTheme)
	}
	return s.snapshot(sessionID), nil
}

func (s *themeService) Toggle(ctx context.Context, sessionID string) *ThemeResult {
	_, span := startSpan(ctx, "ThemeService.Toggle")
	defer span.End()

	s.sessions.GetOrCreate(sessionID).Theme.Toggle()
	return s.snapshot(sessionID)
}
