package repository

import (
	"context"

	"folioapi/internal/model"
)

// ProfileRepository reads the content about the portfolio owner that is
// not part of a domain catalog.
type ProfileRepository interface {
	ListRecommendations(ctx context.Context) ([]model.Recommendation, error)
	GetStack(ctx context.Context) (model.Stack, error)
}
