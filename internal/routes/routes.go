package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sudanscouts/community-backend/internal/authz"
	"github.com/sudanscouts/community-backend/internal/config"
	"github.com/sudanscouts/community-backend/internal/handlers"
	"github.com/sudanscouts/community-backend/internal/middleware"
	"github.com/sudanscouts/community-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	roleService *services.RoleService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	scoutHandler *handlers.ScoutHandler,
	productHandler *handlers.ProductHandler,
	postHandler *handlers.PostHandler,
	rosterHandler *handlers.RosterHandler,
	storeHandler *handlers.StoreHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public pages: member directory, storefront, activity feed.
	api.Get("/scouts", scoutHandler.List)
	api.Get("/scouts/:id", scoutHandler.Get)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.Get)
	api.Get("/posts", postHandler.List)
	api.Get("/posts/:id", postHandler.Get)

	// Checkout and contact build messaging deep links; no auth needed.
	api.Post("/store/checkout", storeHandler.Checkout)
	api.Post("/contact", storeHandler.Contact)

	// Auth gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Admin surfaces. The area middleware re-resolves the role on every
	// request, so list-screen checks are never trusted alone.
	admin := api.Group("/admin", middleware.JWTProtected(cfg))

	finance := admin.Group("", middleware.RequireArea(roleService, authz.AreaFinance))
	finance.Post("/scouts", scoutHandler.Create)
	finance.Put("/scouts/:id", scoutHandler.Update)
	finance.Delete("/scouts/:id", scoutHandler.Delete)
	finance.Put("/scouts/:id/payments/:index", scoutHandler.SetPaymentStatus)
	finance.Get("/roster/export", rosterHandler.Export)
	finance.Post("/roster/import", rosterHandler.Import)
	finance.Post("/products", productHandler.Create)
	finance.Put("/products/:id", productHandler.Update)
	finance.Delete("/products/:id", productHandler.Delete)

	media := admin.Group("", middleware.RequireArea(roleService, authz.AreaMedia))
	media.Post("/posts", postHandler.Create)
	media.Put("/posts/:id", postHandler.Update)
	media.Delete("/posts/:id", postHandler.Delete)

	// Uploads back both admin areas (member photos, product shots, post
	// media), so any resolved role may use them; NoRole still cannot.
	admin.Post("/uploads", middleware.RequireAnyArea(roleService), uploadHandler.Upload)
}
