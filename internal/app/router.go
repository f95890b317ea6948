// Package app assembles the HTTP surface of the storefront API.
package app

import (
	"time"

	"storefront-api/internal/config"
	"storefront-api/internal/handler"
	"storefront-api/internal/middleware"
	"storefront-api/internal/observability"
	"storefront-api/internal/service"
	"storefront-api/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services are the dependencies the router wires into handlers.
type Services struct {
	Catalog   service.CatalogService
	Leads     service.LeadService
	Orders    service.OrderService
	Auth      service.AuthService
	Dashboard service.DashboardService
	Hub       *ws.Hub
	Metrics   *observability.Metrics
}

// New builds the fiber application with every route registered.
func New(cfg *config.Config, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "Storefront API",
		BodyLimit:               cfg.BodyLimit,
		ErrorHandler:            handler.ErrorHandler,
		DisableStartupMessage:   cfg.AppEnv == "test",
		ProxyHeader:             cfg.ProxyHeader,
		EnableTrustedProxyCheck: len(cfg.TrustedProxies) > 0,
		TrustedProxies:          cfg.TrustedProxies,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	if cfg.AppEnv != "test" {
		app.Use(logger.New())
	}
	if svc.Metrics != nil {
		app.Use(svc.Metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(svc.Metrics.Handler()))
	}

	productHandler := handler.NewProductHandler(svc.Catalog)
	leadHandler := handler.NewLeadHandler(svc.Leads)
	orderHandler := handler.NewOrderHandler(svc.Orders)
	authHandler := handler.NewAuthHandler(svc.Auth)
	dashHandler := handler.NewDashboardHandler(svc.Dashboard)

	admin := middleware.RequireAdmin(svc.Auth)
	jsonBody := middleware.RequireJSON()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "env": cfg.AppEnv})
	})

	app.Get("/products", productHandler.GetProducts)
	app.Post("/products", admin, jsonBody, productHandler.CreateProduct)
	app.Patch("/products/:id", admin, jsonBody, productHandler.UpdateProduct)
	app.Delete("/products/:id", admin, productHandler.DeleteProduct)

	app.Post("/leads", publicLimiter(cfg.PublicRateLimit), jsonBody, leadHandler.SubmitLead)
	app.Get("/leads", admin, leadHandler.GetLeads)

	app.Post("/orders", publicLimiter(cfg.PublicRateLimit), jsonBody, orderHandler.CreateOrder)
	app.Get("/orders", admin, orderHandler.GetOrders)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/login", jsonBody, authHandler.Login)
	adminGroup.Post("/token", jsonBody, authHandler.ValidateToken)
	adminGroup.Get("/stats", admin, dashHandler.GetDashboardStats)
	adminGroup.Get("/stats/sales", admin, dashHandler.GetDailySales)

	if svc.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", middleware.RequireAdminOrQueryToken(svc.Auth), websocket.New(svc.Hub.Serve))
	}

	return app
}

// publicLimiter throttles one anonymous write route per client IP; each call
// gets its own counters. A limit of 0 turns it off.
func publicLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many requests"})
		},
	})
}
