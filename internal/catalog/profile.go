package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"folioapi/internal/model"
	"folioapi/internal/repository"
)

var ErrInvalidRecommendation = errors.New("recommendation needs a name and a text")

// Profile holds the portfolio owner's recommendations and stack. Like a
// Store it is built once and read-only afterwards.
type Profile struct {
	recommendations []model.Recommendation
	stack           model.Stack
}

// NewProfile validates recs and returns a Profile owning copies of recs and
// stack.
func NewProfile(recs []model.Recommendation, stack model.Stack) (*Profile, error) {
	seen := make(map[int]struct{}, len(recs))
	for _, r := range recs {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("recommendation %d: %w", r.ID, ErrDuplicateID)
		}
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Text) == "" {
			return nil, fmt.Errorf("recommendation %d: %w", r.ID, ErrInvalidRecommendation)
		}
		seen[r.ID] = struct{}{}
	}

	stack = stack.Clone()
	if stack.Techs == nil {
		stack.Techs = []string{}
	}
	if stack.Tools == nil {
		stack.Tools = []string{}
	}
	recs = slices.Clone(recs)
	if recs == nil {
		recs = []model.Recommendation{}
	}
	return &Profile{recommendations: recs, stack: stack}, nil
}

// LoadProfile reads the profile content from repo once.
func LoadProfile(ctx context.Context, repo repository.ProfileRepository) (*Profile, error) {
	recs, err := repo.ListRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}
	stack, err := repo.GetStack(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stack: %w", err)
	}
	return NewProfile(recs, stack)
}

// Recommendations returns a copy of the recommendations in authoring order.
func (p *Profile) Recommendations() []model.Recommendation {
	return slices.Clone(p.recommendations)
}

// Stack returns a copy of the tech and tool lists.
func (p *Profile) Stack() model.Stack {
	return p.stack.Clone()
}
