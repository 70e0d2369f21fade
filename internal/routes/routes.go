package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/lumina-store/lumina/internal/admin"
	"github.com/lumina-store/lumina/internal/auth"
	"github.com/lumina-store/lumina/internal/config"
	"github.com/lumina-store/lumina/internal/content"
	"github.com/lumina-store/lumina/internal/middleware"
	"github.com/lumina-store/lumina/internal/product"
	"github.com/lumina-store/lumina/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Authorization",
		MaxAge:       86400,
	}))
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	// Repositories fall back to memory when running without a database.
	var (
		authRepo    auth.Repository
		walletRepo  wallet.Repository
		productRepo product.Repository
		contentRepo content.Repository
		adminRepo   admin.Repository
	)
	if d.DB != nil {
		authRepo = auth.NewPostgresRepository(d.DB)
		walletRepo = wallet.NewPostgresRepository(d.DB)
		productRepo = product.NewPostgresRepository(d.DB)
		contentRepo = content.NewPostgresRepository(d.DB)
		adminRepo = admin.NewPostgresRepository(d.DB)
	} else {
		authRepo = auth.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
		productRepo = product.NewMemoryRepository()
		contentRepo = content.NewMemoryRepository()
		adminRepo = admin.NewMemoryRepository()
	}

	walletSvc := wallet.NewService(walletRepo, d.Cfg.WalletCurrency)
	authSvc := auth.NewService(d.Cfg, authRepo, walletSvc)
	productCache := product.NewCache(d.Cache, d.Cfg.ProductCacheTTL, d.Logger)
	productSvc := product.NewService(productRepo, productCache)
	contentSvc := content.NewService(contentRepo)
	adminSvc := admin.NewService(adminRepo)

	authHandler := auth.NewHandler(authSvc)
	walletHandler := wallet.NewHandler(walletSvc)
	productHandler := product.NewHandler(productSvc)
	contentHandler := content.NewHandler(contentSvc)
	adminHandler := admin.NewHandler(adminSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAuthRoutes(api, authHandler)
	RegisterProductRoutes(api, productHandler)

	protected := api.Group("", middleware.RequireSession(authSvc))
	protected.Get("/wallet", walletHandler.Me)

	adminGroup := api.Group("/admin", middleware.RequireAdmin(authSvc))
	RegisterAdminRoutes(adminGroup, adminHandler, contentHandler, productHandler)

	return nil
}
