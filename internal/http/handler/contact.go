package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/contact"
	"folioapi/internal/http/middleware"
	"folioapi/internal/i18n"
	"folioapi/internal/model"
	"folioapi/internal/service"
)

// SubmitContact accepts a JSON contact-form submission. Validation
// messages are localized.
//
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body model.ContactMessage true "submission"
// @Success 202 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var msg model.ContactMessage
		if err := c.BodyParser(&msg); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		tag := middleware.GetLanguage(c)
		err := svc.Submit(c.UserContext(), msg)
		switch {
		case err == nil:
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"status":  "sent",
				"message": i18n.Text(tag, "contact.success"),
			})
		case errors.Is(err, contact.ErrFieldsRequired):
			return writeError(c, fiber.StatusUnprocessableEntity, "FIELDS_REQUIRED", i18n.Text(tag, "contact.errorAllFields"))
		case errors.Is(err, contact.ErrInvalidEmail):
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_EMAIL", i18n.Text(tag, "contact.errorEmail"))
		case errors.Is(err, contact.ErrNotConfigured):
			return writeError(c, fiber.StatusServiceUnavailable, "CONTACT_UNAVAILABLE", i18n.Text(tag, "contact.errorSubmit"))
		default:
			return writeError(c, fiber.StatusBadGateway, "DELIVERY_FAILED", i18n.Text(tag, "contact.errorSubmit"))
		}
	}
}

// GetContactCard returns the owner's contact details and social links.
//
// @Summary Owner contact card
// @Tags contact
// @Produce json
// @Success 200 {object} contact.Card
// @Router /contact [get]
func GetContactCard(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Card(c.UserContext()))
	}
}
