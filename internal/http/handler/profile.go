package handler

import (
	"github.com/gofiber/fiber/v2"

	"folioapi/internal/model"
	"folioapi/internal/service"
)

type recommendationsResponse struct {
	Data []model.Recommendation `json:"data"`
}

// ListRecommendations returns the testimonials in authoring order.
//
// @Summary List recommendations
// @Tags profile
// @Produce json
// @Success 200 {object} recommendationsResponse
// @Router /recommendations [get]
func ListRecommendations(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(recommendationsResponse{Data: svc.Recommendations(c.UserContext())})
	}
}

// GetStack returns the technologies and tools lists.
//
// @Summary Tech and tool stack
// @Tags profile
// @Produce json
// @Success 200 {object} model.Stack
// @Router /stack [get]
func GetStack(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Stack(c.UserContext()))
	}
}
