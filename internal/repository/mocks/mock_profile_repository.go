package mocks

import (
	"context"

	"folioapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ListRecommendations(ctx context.Context) ([]model.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockProfileRepository) GetStack(ctx context.Context) (model.Stack, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Stack), args.Error(1)
}
