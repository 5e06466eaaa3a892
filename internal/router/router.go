// Package router assembles the Fiber app: global middleware, API docs, the /players
// routes and the 404 fallback. Keeping it out of main lets tests build the exact same
// app against an in-memory store.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the OpenAPI document with swag so /api-docs/doc.json can serve it
	_ "github.com/trentd187/players-api/docs"
	"github.com/trentd187/players-api/internal/database"
	"github.com/trentd187/players-api/internal/handlers"
	"github.com/trentd187/players-api/internal/middleware"
)

// AppName is reported in Fiber's startup banner and Server header.
const AppName = "Players API"

// New returns a ready-to-listen Fiber app backed by store.
// It panics when store is nil (see handlers.NewPlayers).
func New(store database.Store, log zerolog.Logger) *fiber.App {
	players := handlers.NewPlayers(store, log)

	app := fiber.New(fiber.Config{
		AppName:               AppName,
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true, // We log our own startup line with zerolog
	})

	// --- Global middleware ---
	// Order matters: the logger wraps recover so a panic is logged as a 500.
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(fiberrecover.New())
	// Allow every origin; this API has no browser session to protect.
	app.Use(cors.New())

	// --- Public routes ---
	app.Get("/", handlers.Root)

	// Swagger UI. http-swagger is a net/http handler, so the adaptor bridges it into Fiber.
	app.Get("/api-docs", func(c *fiber.Ctx) error {
		return c.Redirect("/api-docs/index.html", fiber.StatusMovedPermanently)
	})
	app.Get("/api-docs/*", adaptor.HTTPHandler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	)))

	// --- Player routes ---
	// GET    /players      list every player
	// GET    /players/:id  fetch one player
	// POST   /players      create a player
	// PUT    /players/:id  replace a player
	// DELETE /players/:id  remove a player
	app.Get("/players", players.List)
	app.Get("/players/:id", players.Get)
	app.Post("/players", players.Create)
	app.Put("/players/:id", players.Update)
	app.Delete("/players/:id", players.Delete)

	// Registered last: only runs when no route above matched.
	app.Use(handlers.NotFound)

	return app
}
