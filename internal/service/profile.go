package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
)

// ProfileService serves the content about the portfolio owner.
type ProfileService interface {
	Recommendations(ctx context.Context) []model.Recommendation
	Stack(ctx context.Context) model.Stack
}

type profileService struct {
	profile *catalog.Profile
}

// NewProfileService constructs a ProfileService over profile.
func NewProfileService(profile *catalog.Profile) ProfileService {
	return &profileService{profile: profile}
}

func (s *profileService) Recommendations(ctx context.Context) []model.Recommendation {
	_, span := startSpan(ctx, "ProfileService.Recommendations")
	defer span.End()

	recs := s.profile.Recommendations()
	span.SetAttributes(attribute.Int("profile.recommendations", len(recs)))
	return recs
}

func (s *profileService) Stack(ctx context.Context) model.Stack {
	_, span := startSpan(ctx, "ProfileService.Stack")
	defer span.End()
	return s.profile.Stack()
}
