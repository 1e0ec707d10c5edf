package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/http/middleware"
	"folioapi/internal/i18n"
	"folioapi/internal/model"
	"folioapi/internal/search"
	"folioapi/internal/service"
)

// labeled is a value with its display label in the negotiated language.
type labeled struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type categoriesResponse struct {
	Data        []labeled `json:"data"`
	SortOptions []labeled `json:"sort_options"`
}

type relatedResponse struct {
	Data []model.ContentRecord `json:"data"`
}

var sortOrders = []search.SortOrder{search.SortNewest, search.SortOldest, search.SortAlphabetical}

func catalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownDomain):
		return writeError(c, fiber.StatusNotFound, "UNKNOWN_DOMAIN", "unknown catalog")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "record not found")
	default:
		return internalError(c)
	}
}

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

// ListRecords returns the records of domain filtered by ?category=, ?q=
// and ordered by ?sort= (newest, oldest, alphabetical).
//
// @Summary List catalog records
// @Tags catalog
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param category query string false "exact category"
// @Param q query string false "title substring"
// @Param sort query string false "newest, oldest or alphabetical"
// @Success 200 {object} service.RecordListResult
// @Router /{domain} [get]
func ListRecords(svc service.CatalogService, domain model.Domain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := search.Query{
			Category: model.Category(c.Query("category")),
			Search:   c.Query("q"),
			Sort:     search.SortOrder(c.Query("sort")),
		}
		res, err := svc.List(c.UserContext(), string(domain), q)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(res)
	}
}

// GetRecord returns one record of domain by its integer id.
//
// @Summary Get a catalog record
// @Tags catalog
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param id path int true "record id"
// @Success 200 {object} model.ContentRecord
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /{domain}/{id} [get]
func GetRecord(svc service.CatalogService, domain model.Domain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), string(domain), id)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(rec)
	}
}

// ListRelated returns the records the detail of :id links to.
//
// @Summary List related records
// @Tags catalog
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param id path int true "record id"
// @Success 200 {object} relatedResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /{domain}/{id}/related [get]
func ListRelated(svc service.CatalogService, domain model.Domain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		related, err := svc.Related(c.UserContext(), string(domain), id)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(relatedResponse{Data: related})
	}
}

// ListCategories returns the categories present in domain and the sort
// options, labeled in the request language.
//
// @Summary List categories and sort options
// @Tags catalog
// @Produce json
// @Param domain path string true "projects or timeline"
// @Param lang query string false "fr or en"
// @Success 200 {object} categoriesResponse
// @Router /{domain}/categories [get]
func ListCategories(svc service.CatalogService, domain model.Domain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := svc.Categories(c.UserContext(), string(domain))
		if err != nil {
			return catalogError(c, err)
		}

		tag := middleware.GetLanguage(c)
		res := categoriesResponse{
			Data:        make([]labeled, 0, len(cats)),
			SortOptions: make([]labeled, 0, len(sortOrders)),
		}
		for _, cat := range cats {
			res.Data = append(res.Data, labeled{Value: string(cat), Label: i18n.CategoryLabel(tag, cat)})
		}
		for _, o := range sortOrders {
			res.SortOptions = append(res.SortOptions, labeled{Value: string(o), Label: i18n.SortLabel(tag, o)})
		}
		return c.JSON(res)
	}
}
