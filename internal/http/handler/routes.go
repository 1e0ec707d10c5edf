package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
	"folioapi/internal/service"
)

// Services bundles the use cases the routes depend on.
type Services struct {
	Catalog   service.CatalogService
	Selection service.SelectionService
	Theme     service.ThemeService
	Asset     service.AssetService
	Contact   service.ContactService
	Profile   service.ProfileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. db is nil
// for the static catalog source.
func RegisterRoutes(app *fiber.App, catalogs *catalog.Set, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(catalogs, db))
	app.Get("/healthz", LivenessProbe())

	sel := app.Group("/selection")
	sel.Get("/:domain", CurrentSelection(svc.Selection))
	sel.Delete("/:domain", ClearSelection(svc.Selection))
	sel.Put("/:domain/:id", SelectRecord(svc.Selection))
	sel.Post("/:domain/:id/toggle", ToggleRecord(svc.Selection))

	app.Get("/theme", GetTheme(svc.Theme))
	app.Post("/theme/toggle", ToggleTheme(svc.Theme))
	app.Put("/theme/:name", SetTheme(svc.Theme))

	app.Get("/contact", GetContactCard(svc.Contact))
	app.Post("/contact", SubmitContact(svc.Contact))

	app.Get("/assets/*", RedirectAsset(svc.Asset))

	app.Get("/recommendations", ListRecommendations(svc.Profile))
	app.Get("/stack", GetStack(svc.Profile))

	for _, d := range model.Domains {
		g := app.Group("/" + string(d))
		g.Get("/", ListRecords(svc.Catalog, d))
		g.Get("/categories", ListCategories(svc.Catalog, d))
		g.Get("/:id", GetRecord(svc.Catalog, d))
		g.Get("/:id/related", ListRelated(svc.Catalog, d))
	}
}
