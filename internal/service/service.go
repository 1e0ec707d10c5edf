// Package service holds the use cases the HTTP layer exposes. Each use case
// runs inside an OpenTelemetry span.
package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
)

var (
	ErrUnknownDomain  = errors.New("unknown domain")
	ErrNotFound       = errors.New("record not found")
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrAssetsDisabled = errors.New("asset storage not configured")
)

var tracer = otel.Tracer("folioapi/service")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// fail records err on span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func storeFor(catalogs *catalog.Set, domain string) (*catalog.Store, error) {
	d, err := model.ParseDomain(domain)
	if err != nil {
		return nil, ErrUnknownDomain
	}
	st, ok := catalogs.Store(d)
	if !ok {
		return nil, ErrUnknownDomain
	}
	return st, nil
}
