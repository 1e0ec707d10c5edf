package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioapi/internal/model"
	repoMocks "folioapi/internal/repository/mocks"
)

func recommendations() []model.Recommendation {
	return []model.Recommendation{
		{ID: 1, Name: "Jean Dupont", Title: "Directeur Technique", Text: "Excellent travail."},
		{ID: 2, Name: "Marie Martin", Title: "CTO", Text: "Très fiable."},
	}
}

func TestNewProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		recs := recommendations()
		stack := model.Stack{Techs: []string{"Go"}}
		p, err := NewProfile(recs, stack)
		require.NoError(t, err)

		recs[0].Name = "mutated"
		stack.Techs[0] = "mutated"
		assert.Equal(t, "Jean Dupont", p.Recommendations()[0].Name)
		assert.Equal(t, []string{"Go"}, p.Stack().Techs)
		assert.Equal(t, []string{}, p.Stack().Tools)

		got := p.Recommendations()
		got[1].Text = "mutated"
		assert.Equal(t, "Très fiable.", p.Recommendations()[1].Text)
	})

	t.Run("empty", func(t *testing.T) {
		p, err := NewProfile(nil, model.Stack{})
		require.NoError(t, err)
		assert.Equal(t, []model.Recommendation{}, p.Recommendations())
	})

	t.Run("duplicate id", func(t *testing.T) {
		recs := append(recommendations(), model.Recommendation{ID: 1, Name: "Pierre", Text: "ok"})
		_, err := NewProfile(recs, model.Stack{})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("missing text", func(t *testing.T) {
		_, err := NewProfile([]model.Recommendation{{ID: 1, Name: "Pierre", Text: " "}}, model.Stack{})
		assert.ErrorIs(t, err, ErrInvalidRecommendation)
	})
}

func TestLoadProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("loads both parts", func(t *testing.T) {
		repo := new(repoMocks.MockProfileRepository)
		repo.On("ListRecommendations", ctx).Return(recommendations(), nil)
		repo.On("GetStack", ctx).Return(model.Stack{Techs: []string{"Go"}, Tools: []string{"Git"}}, nil)

		p, err := LoadProfile(ctx, repo)
		require.NoError(t, err)
		assert.Len(t, p.Recommendations(), 2)
		assert.Equal(t, []string{"Git"}, p.Stack().Tools)
		repo.AssertExpectations(t)
	})

	t.Run("recommendations error", func(t *testing.T) {
		repo := new(repoMocks.MockProfileRepository)
		repo.On("ListRecommendations", ctx).Return(nil, errors.New("read fail"))

		_, err := LoadProfile(ctx, repo)
		assert.EqualError(t, err, "load recommendations: read fail")
	})

	t.Run("stack error", func(t *testing.T) {
		repo := new(repoMocks.MockProfileRepository)
		repo.On("ListRecommendations", ctx).Return(recommendations(), nil)
		repo.On("GetStack", ctx).Return(model.Stack{}, errors.New("read fail"))

		_, err := LoadProfile(ctx, repo)
		assert.EqualError(t, err, "load stack: read fail")
	})
}
