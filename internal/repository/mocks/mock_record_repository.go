package mocks

import (
	"context"

	"folioapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) ListByDomain(ctx context.Context, domain model.Domain) ([]model.ContentRecord, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentRecord), args.Error(1)
}
