package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/http/middleware"
	"folioapi/internal/service"
)

// GetTheme returns the session theme and palette.
//
// @Summary Current theme
// @Tags theme
// @Produce json
// @Success 200 {object} service.ThemeResult
// @Router /theme [get]
func GetTheme(svc service.ThemeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Get(c.UserContext(), middleware.GetSessionID(c)))
	}
}

// SetTheme switches the session to :name (light or dark).
//
// @Summary Set theme
// @Tags theme
// @Produce json
// @Param name path string true "light or dark"
// @Success 200 {object} service.ThemeResult
// @Failure 400 {object} errorPayload
// @Router /theme/{name} [put]
func SetTheme(svc service.ThemeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Set(c.UserContext(), middleware.GetSessionID(c), c.Params("name"))
		if err != nil {
			if errors.Is(err, service.ErrUnknownTheme) {
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_THEME", "theme must be light or dark")
			}
			return internalError(c)
		}
		return c.JSON(res)
	}
}

// ToggleTheme flips the session theme.
//
// @Summary Toggle theme
// @Tags theme
// @Produce json
// @Success 200 {object} service.ThemeResult
// @Router /theme/toggle [post]
func ToggleTheme(svc service.ThemeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Toggle(c.UserContext(), middleware.GetSessionID(c)))
	}
}
