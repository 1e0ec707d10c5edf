// Package contact validates contact-form submissions and forwards them to
// the portfolio owner by mail.
package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"folioapi/internal/model"
)

var (
	ErrFieldsRequired = errors.New("name, email and message are required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrNotConfigured  = errors.New("contact delivery not configured")
	ErrDelivery       = errors.New("contact delivery failed")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Sender delivers a validated message.
type Sender interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

// Normalize trims surrounding whitespace from every field.
func Normalize(msg model.ContactMessage) model.ContactMessage {
	return model.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}
}

// Validate checks a normalized message.
func Validate(msg model.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return ErrFieldsRequired
	}
	if !emailPattern.MatchString(msg.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Service validates submissions before handing them to a Sender.
type Service struct {
	sender Sender
}

// NewService returns a Service. A nil sender makes every valid submission
// fail with ErrNotConfigured.
func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit validates msg and sends it once. Send failures wrap ErrDelivery
// unless the sender reports ErrNotConfigured.
func (s *Service) Submit(ctx context.Context, msg model.ContactMessage) error {
	msg = Normalize(msg)
	if err := Validate(msg); err != nil {
		return err
	}
	if s.sender == nil {
		return ErrNotConfigured
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// Card is the owner's public contact details.
type Card struct {
	Info   model.ContactInfo `json:"info"`
	Social model.SocialMedia `json:"social"`
}

// OwnerCard returns the static contact card shown next to the form.
func OwnerCard() Card {
	return Card{
		Info: model.ContactInfo{
			Email:   "dorianmav@outlook.com",
			Phone:   "+33 6 19 44 00 85",
			Address: "Paris, France",
		},
		Social: model.SocialMedia{
			GitHub:   "https://github.com/Dorianmav",
			LinkedIn: "https://www.linkedin.com/in/dorian-mavoungoud/",
		},
	}
}
