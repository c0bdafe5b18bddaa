package http

import (
	"github.com/creator-crm/backend/internal/config"
	"github.com/creator-crm/backend/internal/http/handlers"
	"github.com/creator-crm/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	influencerHandler *handlers.InfluencerHandler,
	campaignHandler *handlers.CampaignHandler,
	reminderHandler *handlers.ReminderHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public, rate-limited against credential stuffing)
	authGroup := api.Group("/auth", middleware.RateLimitMiddleware(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow))
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Meta (public)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta", metaHandler.GetMeta)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Current user / identity changes
	protected.Get("/me", userHandler.GetMe)
	protected.Put("/me/email", userHandler.ChangeEmail)
	protected.Put("/me/password", userHandler.ChangePassword)

	// Influencers
	protected.Post("/influencers", influencerHandler.Create)
	protected.Get("/influencers", influencerHandler.List)
	protected.Get("/influencers/:id", influencerHandler.Get)
	protected.Put("/influencers/:id", influencerHandler.Update)
	protected.Delete("/influencers/:id", influencerHandler.Delete)
	protected.Get("/influencers/:id/campaigns", influencerHandler.GetCampaigns)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.Create)
	protected.Get("/campaigns", campaignHandler.List)
	protected.Get("/campaigns/:id", campaignHandler.Get)
	protected.Put("/campaigns/:id", campaignHandler.Update)
	protected.Delete("/campaigns/:id", campaignHandler.Delete)

	// Campaign-influencer associations
	protected.Get("/campaigns/:id/influencers", campaignHandler.ListInfluencers)
	protected.Post("/campaigns/:id/influencers", campaignHandler.AddInfluencer)
	protected.Put("/campaign-influencers/:id", campaignHandler.UpdateAssociation)
	protected.Delete("/campaigns/:id/influencers/:influencerId", campaignHandler.RemoveInfluencer)

	// Reminders
	protected.Post("/reminders", reminderHandler.Create)
	protected.Get("/reminders", reminderHandler.List)
	protected.Put("/reminders/:id", reminderHandler.Update)
	protected.Delete("/reminders/:id", reminderHandler.Delete)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
