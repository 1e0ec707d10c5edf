package handler

import (
	"github.com/gofiber/fiber/v2"

	"folioapi/internal/http/middleware"
	"folioapi/internal/service"
)

// CurrentSelection returns the session's selected record of :domain.
//
// @Summary Current selection
// @Tags selection
// @Produce json
// @Param domain path string true "projects or timeline"
// @Success 200 {object} service.SelectionResult
// @Router /selection/{domain} [get]
func CurrentSelection(svc service.SelectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Current(c.UserContext(), middleware.GetSessionID(c), c.Params("domain"))
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(res)
	}
}

// SelectRecord selects :id. A miss answers 200 with matched=false and the
// previous selection.
//
// @Summary Select a record
// @Tags selection
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param id path int true "record id"
// @Success 200 {object} service.SelectionResult
// @Failure 400 {object} errorPayload
// @Router /selection/{domain}/{id} [put]
func SelectRecord(svc service.SelectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Select(c.UserContext(), middleware.GetSessionID(c), c.Params("domain"), id)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(res)
	}
}

// ToggleRecord selects :id, or clears the selection when :id is current.
//
// @Summary Toggle a record
// @Tags selection
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param id path int true "record id"
// @Success 200 {object} service.SelectionResult
// @Router /selection/{domain}/{id}/toggle [post]
func ToggleRecord(svc service.SelectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Toggle(c.UserContext(), middleware.GetSessionID(c), c.Params("domain"), id)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(res)
	}
}

// ClearSelection empties the selection of :domain.
//
// @Summary Clear selection
// @Tags selection
// @Produce json
// @Param domain path string true "projects or timeline"
// @Success 200 {object} service.SelectionResult
// @Router /selection/{domain} [delete]
func ClearSelection(svc service.SelectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Clear(c.UserContext(), middleware.GetSessionID(c), c.Params("domain"))
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(res)
	}
}
