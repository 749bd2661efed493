package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/config"
	"github.com/excursion-service/internal/delivery/http/handler"
	"github.com/excursion-service/internal/delivery/http/middleware"
	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	// Handlers
	authHandler    *handler.AuthHandler
	routeHandler   *handler.RouteHandler
	draftHandler   *handler.DraftHandler
	bookingHandler *handler.BookingHandler
	userHandler    *handler.UserHandler
	ruleHandler    *handler.RuleHandler
	tariffHandler  *handler.TariffHandler
	reviewHandler  *handler.ReviewHandler
	uploadHandler  *handler.UploadHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	routeHandler *handler.RouteHandler,
	draftHandler *handler.DraftHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
	ruleHandler *handler.RuleHandler,
	tariffHandler *handler.TariffHandler,
	reviewHandler *handler.ReviewHandler,
	uploadHandler *handler.UploadHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Excursion Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		authUC:         authUC,
		authHandler:    authHandler,
		routeHandler:   routeHandler,
		draftHandler:   draftHandler,
		bookingHandler: bookingHandler,
		userHandler:    userHandler,
		ruleHandler:    ruleHandler,
		tariffHandler:  tariffHandler,
		reviewHandler:  reviewHandler,
		uploadHandler:  uploadHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Загруженные фотографии маршрутов
	s.app.Static(s.config.Media.PublicURL, s.config.Media.Dir)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	api.Post("/auth/login", s.authHandler.Login)

	// Public catalog
	api.Get("/routes", s.routeHandler.ListPublished)
	api.Get("/routes/:id", s.routeHandler.GetPublished)
	api.Get("/routes/:id/geometry", s.routeHandler.GetGeometry)
	api.Get("/routes/:id/dates", s.routeHandler.ListAvailableDates)
	api.Get("/routes/:id/reviews", s.reviewHandler.ListByRoute)

	// Public submissions
	api.Post("/bookings", s.bookingHandler.Create)
	api.Post("/reviews", s.reviewHandler.Submit)

	// Back-office: всё под аутентификацией
	auth := middleware.Auth(s.authUC, s.config.Auth.SecretKey, s.logger)
	api.Get("/auth/me", auth, s.authHandler.Me)

	admin := api.Group("/admin", auth)

	// Routes management
	routes := admin.Group("/routes", middleware.RequireRule(s.authUC, domain.RuleRoutesManage))
	routes.Get("/", s.routeHandler.ListAll)
	routes.Post("/", s.routeHandler.Create)
	routes.Get("/:id", s.routeHandler.Get)
	routes.Put("/:id", s.routeHandler.Replace)
	routes.Post("/:id/archive", s.routeHandler.Archive)
	routes.Get("/:id/dates", s.routeHandler.ListDates)
	routes.Post("/:id/dates", s.routeHandler.AddDate)
	routes.Patch("/dates/:date_id", s.routeHandler.UpdateDate)
	routes.Delete("/dates/:date_id", s.routeHandler.DeleteDate)

	// Route builder sessions
	drafts := admin.Group("/drafts", middleware.RequireRule(s.authUC, domain.RuleRoutesManage))
	drafts.Post("/", s.draftHandler.Start)
	drafts.Get("/:session_id", s.draftHandler.Get)
	drafts.Get("/:session_id/stats", s.draftHandler.Stats)
	drafts.Delete("/:session_id", s.draftHandler.Close)
	drafts.Patch("/:session_id/meta", s.draftHandler.UpdateMeta)
	drafts.Post("/:session_id/waypoints", s.draftHandler.AddWaypoint)
	drafts.Put("/:session_id/waypoints/:index", s.draftHandler.UpdateWaypoint)
	drafts.Post("/:session_id/waypoints/:index/move", s.draftHandler.MoveWaypoint)
	drafts.Delete("/:session_id/waypoints/:index", s.draftHandler.RemoveWaypoint)
	drafts.Post("/:session_id/waypoints/reorder", s.draftHandler.DragReorder)
	drafts.Post("/:session_id/photos", s.draftHandler.AddPhotos)
	drafts.Post("/:session_id/photos/:index/cover", s.draftHandler.SetCoverPhoto)
	drafts.Post("/:session_id/photos/:index/move", s.draftHandler.MovePhoto)
	drafts.Delete("/:session_id/photos/:index", s.draftHandler.RemovePhoto)
	drafts.Post("/:session_id/save", s.draftHandler.Save)

	// Uploads
	admin.Post("/uploads/photos", middleware.RequireRule(s.authUC, domain.RuleRoutesManage), s.uploadHandler.UploadPhotos)

	// Bookings management
	bookings := admin.Group("/bookings", middleware.RequireRule(s.authUC, domain.RuleBookingsManage))
	bookings.Get("/", s.bookingHandler.List)
	bookings.Get("/:id", s.bookingHandler.Get)
	bookings.Patch("/:id", s.bookingHandler.Update)

	// Users management
	users := admin.Group("/users", middleware.RequireRule(s.authUC, domain.RuleUsersManage))
	users.Get("/", s.userHandler.List)
	users.Post("/", s.userHandler.Create)
	users.Get("/:id", s.userHandler.Get)
	users.Put("/:id", s.userHandler.Update)
	users.Get("/:id/rules", s.userHandler.ListRules)

	// Access rules management
	rules := admin.Group("/rules", middleware.RequireRule(s.authUC, domain.RuleRulesManage))
	rules.Get("/", s.ruleHandler.List)
	rules.Post("/", s.ruleHandler.Create)
	rules.Get("/:id", s.ruleHandler.Get)
	rules.Put("/:id", s.ruleHandler.Update)
	rules.Delete("/:id", s.ruleHandler.Delete)

	// Tariffs management
	tariffs := admin.Group("/tariffs", middleware.RequireRule(s.authUC, domain.RuleTariffsManage))
	tariffs.Get("/", s.tariffHandler.List)
	tariffs.Post("/", s.tariffHandler.Create)
	tariffs.Get("/:id", s.tariffHandler.Get)
	tariffs.Put("/:id", s.tariffHandler.Update)
	tariffs.Delete("/:id", s.tariffHandler.Delete)

	// Reviews moderation
	moderation := admin.Group("/", middleware.RequireRule(s.authUC, domain.RuleReviewsModerate))
	moderation.Post("/excursions", s.reviewHandler.CreateExcursion)
	moderation.Get("/excursions", s.reviewHandler.ListExcursions)
	moderation.Get("/reviews/pending", s.reviewHandler.ListPending)
	moderation.Patch("/reviews/:id/approval", s.reviewHandler.SetApproval)
	moderation.Delete("/reviews/:id", s.reviewHandler.Delete)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := err.(*errors.AppError); ok {
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr,
			})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
