package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"folioapi/internal/catalog"
	"folioapi/internal/storage"
)

// AssetService hands out download URLs for the images records reference.
type AssetService interface {
	URL(ctx context.Context, key string) (string, error)
}

type assetService struct {
	catalogs *catalog.Set
	store    storage.Storage
	expiry   time.Duration
}

// NewAssetService constructs an AssetService. A nil store disables assets.
func NewAssetService(catalogs *catalog.Set, store storage.Storage, expiry time.Duration) AssetService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &assetService{catalogs: catalogs, store: store, expiry: expiry}
}

// URL presigns key. Keys no record references are reported as ErrNotFound
// without touching the store.
func (s *assetService) URL(ctx context.Context, key string) (string, error) {
	ctx, span := startSpan(ctx, "AssetService.URL")
	defer span.End()
	span.SetAttributes(attribute.String("asset.key", key))

	if s.store == nil {
		return "", fail(span, ErrAssetsDisabled)
	}
	if !s.catalogs.HasImage(key) {
		return "", ErrNotFound
	}

	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fail(span, fmt.Errorf("stat asset: %w", err))
	}

	u, err := s.store.PresignGet(ctx, key, s.expiry)
	if err != nil {
		return "", fail(span, fmt.Errorf("presign asset: %w", err))
	}
	return u, nil
}
