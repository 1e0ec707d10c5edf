package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folioapi/internal/catalog"
	"folioapi/internal/contact"
	contactMocks "folioapi/internal/contact/mocks"
	"folioapi/internal/model"
	"folioapi/internal/search"
	"folioapi/internal/session"
	"folioapi/internal/storage"
	storageMocks "folioapi/internal/storage/mocks"
)

func testCatalogs(t *testing.T) *catalog.Set {
	t.Helper()
	projects, err := catalog.New(model.DomainProjects, []model.ContentRecord{
		{ID: 1, Title: "Alpha", Category: model.CategoryWebApplication, DateSpan: "2021", Images: []string{"projects/alpha.png"},
			Detail: &model.ProjectDetail{RelatedIDs: []int{3}}},
		{ID: 2, Title: "beta", Category: model.CategoryBranding, DateSpan: "2023"},
		{ID: 3, Title: "Gamma", Category: model.CategoryWebApplication, DateSpan: "2022 - Présent"},
	})
	require.NoError(t, err)
	timeline, err := catalog.New(model.DomainTimeline, []model.ContentRecord{
		{ID: 1, Title: "Master", Category: model.CategoryEducation, DateSpan: "2019 - 2021"},
	})
	require.NoError(t, err)
	return catalog.NewSet(projects, timeline)
}

func fixedNow() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

func recordIDs(recs []model.ContentRecord) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestCatalogService_List(t *testing.T) {
	svc := NewCatalogService(testCatalogs(t), fixedNow)
	ctx := context.Background()

	tests := []struct {
		name    string
		domain  string
		query   search.Query
		want    []int
		applied search.SortOrder
		wantErr error
	}{
		{name: "defaults to newest", domain: "projects", want: []int{3, 2, 1}, applied: search.SortNewest},
		{name: "category then sort", domain: "projects", query: search.Query{Category: model.CategoryWebApplication, Sort: "oldest"}, want: []int{1, 3}, applied: search.SortOldest},
		{name: "case folded search", domain: "projects", query: search.Query{Search: "BET"}, want: []int{2}, applied: search.SortNewest},
		{name: "alphabetical", domain: "projects", query: search.Query{Sort: "Alphabetical"}, want: []int{1, 2, 3}, applied: search.SortAlphabetical},
		{name: "empty result is not an error", domain: "projects", query: search.Query{Search: "zzz"}, want: []int{}, applied: search.SortNewest},
		{name: "unknown domain", domain: "blog", wantErr: ErrUnknownDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(ctx, tt.domain, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, recordIDs(res.Items))
			assert.Equal(t, len(tt.want), res.Total)
			assert.Equal(t, tt.applied, res.Applied.Sort)
		})
	}
}

func TestCatalogService_GetAndCategories(t *testing.T) {
	svc := NewCatalogService(testCatalogs(t), fixedNow)
	ctx := context.Background()

	rec, err := svc.Get(ctx, "projects", 2)
	require.NoError(t, err)
	assert.Equal(t, "beta", rec.Title)

	_, err = svc.Get(ctx, "projects", 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "nope", 1)
	assert.ErrorIs(t, err, ErrUnknownDomain)

	cats, err := svc.Categories(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, []model.Category{model.CategoryWebApplication, model.CategoryBranding}, cats)
}

func TestCatalogService_Related(t *testing.T) {
	svc := NewCatalogService(testCatalogs(t), fixedNow)
	ctx := context.Background()

	related, err := svc.Related(ctx, "projects", 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, recordIDs(related))

	related, err = svc.Related(ctx, "projects", 2)
	require.NoError(t, err)
	assert.Empty(t, related)

	_, err = svc.Related(ctx, "projects", 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Related(ctx, "blog", 1)
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestProfileService(t *testing.T) {
	profile, err := catalog.NewProfile(
		[]model.Recommendation{{ID: 1, Name: "Jean Dupont", Text: "Excellent."}},
		model.Stack{Techs: []string{"Go"}, Tools: []string{"Git"}},
	)
	require.NoError(t, err)
	svc := NewProfileService(profile)
	ctx := context.Background()

	recs := svc.Recommendations(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, "Jean Dupont", recs[0].Name)

	recs[0].Name = "mutated"
	assert.Equal(t, "Jean Dupont", svc.Recommendations(ctx)[0].Name)
	assert.Equal(t, model.Stack{Techs: []string{"Go"}, Tools: []string{"Git"}}, svc.Stack(ctx))
}

func TestSelectionService(t *testing.T) {
	catalogs := testCatalogs(t)
	reg, err := session.NewRegistry(catalogs, 8, model.ThemeLight)
	require.NoError(t, err)
	svc := NewSelectionService(catalogs, reg)
	ctx := context.Background()

	res, err := svc.Current(ctx, "s1", "projects")
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Nil(t, res.Current)
	assert.Equal(t, 0, reg.Len(), "reading does not create a session")

	_, err = svc.Current(ctx, "s1", "blog")
	assert.ErrorIs(t, err, ErrUnknownDomain)

	res, err = svc.Select(ctx, "s1", "projects", 2)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 2, res.Current.ID)

	res, err = svc.Select(ctx, "s1", "projects", 42)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	require.NotNil(t, res.Current)
	assert.Equal(t, 2, res.Current.ID, "miss keeps previous selection")

	other, err := svc.Current(ctx, "s2", "projects")
	require.NoError(t, err)
	assert.Nil(t, other.Current, "sessions are isolated")

	timeline, err := svc.Current(ctx, "s1", "timeline")
	require.NoError(t, err)
	assert.Nil(t, timeline.Current, "domains are isolated")

	res, err = svc.Toggle(ctx, "s1", "projects", 2)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Nil(t, res.Current)

	res, err = svc.Toggle(ctx, "s1", "projects", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Current.ID)

	res, err = svc.Clear(ctx, "s1", "projects")
	require.NoError(t, err)
	assert.Nil(t, res.Current)

	_, err = svc.Select(ctx, "s1", "blog", 1)
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestThemeService(t *testing.T) {
	reg, err := session.NewRegistry(testCatalogs(t), 8, model.ThemeLight)
	require.NoError(t, err)
	svc := NewThemeService(reg)
	ctx := context.Background()

	res := svc.Get(ctx, "s1")
	assert.Equal(t, model.ThemeLight, res.Theme)
	assert.Equal(t, "#F5F5DC", res.Colors.Background)
	assert.Equal(t, 0, reg.Len(), "reading does not create a session")

	res = svc.Toggle(ctx, "s1")
	assert.Equal(t, model.ThemeDark, res.Theme)
	assert.Equal(t, "#1A1A2E", res.Colors.Background)

	_, err = svc.Set(ctx, "s1", "sepia")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, model.ThemeDark, svc.Get(ctx, "s1").Theme)

	res, err = svc.Set(ctx, "s1", "light")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, res.Theme)
}

func TestAssetService_URL(t *testing.T) {
	ctx := context.Background()
	key := "projects/alpha.png"

	t.Run("presigns referenced key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		store.On("Stat", mock.Anything, key).Return(storage.ObjectInfo{Key: key}, nil).Once()
		store.On("PresignGet", mock.Anything, key, time.Minute).Return("https://cdn/alpha.png?sig", nil).Once()

		u, err := NewAssetService(testCatalogs(t), store, time.Minute).URL(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/alpha.png?sig", u)
		store.AssertExpectations(t)
	})

	t.Run("unreferenced key never reaches storage", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		_, err := NewAssetService(testCatalogs(t), store, time.Minute).URL(ctx, "secrets/env")
		assert.ErrorIs(t, err, ErrNotFound)
		store.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything)
	})

	t.Run("missing object", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		store.On("Stat", mock.Anything, key).Return(storage.ObjectInfo{}, storage.ErrNotFound).Once()
		_, err := NewAssetService(testCatalogs(t), store, time.Minute).URL(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("presign failure", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		store.On("Stat", mock.Anything, key).Return(storage.ObjectInfo{Key: key}, nil).Once()
		store.On("PresignGet", mock.Anything, key, 15*time.Minute).Return("", errors.New("clock skew")).Once()
		_, err := NewAssetService(testCatalogs(t), store, 0).URL(ctx, key)
		assert.EqualError(t, err, "presign asset: clock skew")
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := NewAssetService(testCatalogs(t), nil, time.Minute).URL(ctx, key)
		assert.ErrorIs(t, err, ErrAssetsDisabled)
	})
}

func TestContactService(t *testing.T) {
	ctx := context.Background()
	msg := model.ContactMessage{Name: "Ana", Email: "ana@example.fr", Message: "Bonjour"}

	sender := new(contactMocks.MockSender)
	sender.On("Send", mock.Anything, msg).Return(nil).Once()
	svc := NewContactService(sender)
	assert.NoError(t, svc.Submit(ctx, msg))

	err := svc.Submit(ctx, model.ContactMessage{Name: "Ana", Email: "nope", Message: "x"})
	assert.ErrorIs(t, err, contact.ErrInvalidEmail)

	assert.Equal(t, contact.OwnerCard(), svc.Card(ctx))
	sender.AssertExpectations(t)
}
