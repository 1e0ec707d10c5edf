package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folioapi/internal/contact"
	"folioapi/internal/model"
	"folioapi/internal/search"
	"folioapi/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, domain string, q search.Query) (*service.RecordListResult, error) {
	args := m.Called(ctx, domain, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecordListResult), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, domain string, id int) (*model.ContentRecord, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentRecord), args.Error(1)
}

func (m *MockCatalogService) Related(ctx context.Context, domain string, id int) ([]model.ContentRecord, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentRecord), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context, domain string) ([]model.Category, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) result(args mock.Arguments) (*service.SelectionResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SelectionResult), args.Error(1)
}

func (m *MockSelectionService) Select(ctx context.Context, sessionID, domain string, id int) (*service.SelectionResult, error) {
	return m.result(m.Called(ctx, sessionID, domain, id))
}

func (m *MockSelectionService) Toggle(ctx context.Context, sessionID, domain string, id int) (*service.SelectionResult, error) {
	return m.result(m.Called(ctx, sessionID, domain, id))
}

func (m *MockSelectionService) Current(ctx context.Context, sessionID, domain string) (*service.SelectionResult, error) {
	return m.result(m.Called(ctx, sessionID, domain))
}

func (m *MockSelectionService) Clear(ctx context.Context, sessionID, domain string) (*service.SelectionResult, error) {
	return m.result(m.Called(ctx, sessionID, domain))
}

type MockThemeService struct {
	mock.Mock
}

func (m *MockThemeService) Get(ctx context.Context, sessionID string) *service.ThemeResult {
	return m.Called(ctx, sessionID).Get(0).(*service.ThemeResult)
}

func (m *MockThemeService) Set(ctx context.Context, sessionID, name string) (*service.ThemeResult, error) {
	args := m.Called(ctx, sessionID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ThemeResult), args.Error(1)
}

func (m *MockThemeService) Toggle(ctx context.Context, sessionID string) *service.ThemeResult {
	return m.Called(ctx, sessionID).Get(0).(*service.ThemeResult)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg model.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactService) Card(ctx context.Context) contact.Card {
	return m.Called(ctx).Get(0).(contact.Card)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Recommendations(ctx context.Context) []model.Recommendation {
	args := m.Called(ctx)
	return args.Get(0).([]model.Recommendation)
}

func (m *MockProfileService) Stack(ctx context.Context) model.Stack {
	args := m.Called(ctx)
	return args.Get(0).(model.Stack)
}
