package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folioapi/internal/model"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
