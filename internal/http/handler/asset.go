package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/service"
)

// RedirectAsset redirects to a presigned URL for the image key in the
// wildcard path segment.
//
// @Summary Asset redirect
// @Tags assets
// @Param key path string true "object key, e.g. projects/sante-1.png"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /assets/{key} [get]
func RedirectAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "asset not found")
		}
		u, err := svc.URL(c.UserContext(), key)
		switch {
		case err == nil:
			c.Set(fiber.HeaderCacheControl, "no-store")
			return c.Redirect(u, fiber.StatusFound)
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAssetsDisabled):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "asset not found")
		default:
			return internalError(c)
		}
	}
}
