package service

import (
	"context"
	"errors"

	"folioapi/internal/contact"
	"folioapi/internal/model"
)

// ContactService accepts contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg model.ContactMessage) error
	Card(ctx context.Context) contact.Card
}

type contactService struct {
	inner *contact.Service
}

// NewContactService constructs a ContactService delivering through sender.
func NewContactService(sender contact.Sender) ContactService {
	return &contactService{inner: contact.NewService(sender)}
}

func (s *contactService) Submit(ctx context.Context, msg model.ContactMessage) error {
	ctx, span := startSpan(ctx, "ContactService.Submit")
	defer span.End()

	err := s.inner.Submit(ctx, msg)
	if errors.Is(err, contact.ErrDelivery) || errors.Is(err, contact.ErrNotConfigured) {
		return fail(span, err)
	}
	return err
}

func (s *contactService) Card(ctx context.Context) contact.Card {
	_, span := startSpan(ctx, "ContactService.Card")
	defer span.End()
	return contact.OwnerCard()
}
