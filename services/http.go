package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/qazkids/qazkids_api/services/handlers"
	"github.com/qazkids/qazkids_api/shared"
)

// HttpService owns the public fiber app and the route table.
type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	userSvc      *UserService
	catalogSvc   *CatalogService
	progressSvc  *ProgressService
	contentSvc   *ContentService
	analyticsSvc *AnalyticsService
	mediaSvc     *MediaService
	rateLimitSvc *RateLimitService
	monitorSvc   *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.analyticsSvc = svc.Service(ANALYTICS_SVC).(*AnalyticsService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitorSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		AppName:      "QazKids API",
		ErrorHandler: svc.handleError,
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(MonitoringMiddleware(svc.monitorSvc))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.app = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	catalogHandler := handlers.NewCatalogHandler(svc.catalogSvc, svc.monitorSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.monitorSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.analyticsSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	auth := svc.authSvc.RequiredAuth()
	adminOnly := svc.authSvc.RequireRole(shared.RoleAdmin)
	authorRoles := svc.authSvc.RequireRole(shared.RoleAdmin, shared.RoleTeacher)

	app.Get("/health", svc.health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Post("/auth/register", svc.rateLimitSvc.Limit("register"), authHandler.Register)
	app.Post("/auth/login", svc.rateLimitSvc.Limit("login"), authHandler.Login)

	app.Get("/users/me", auth, userHandler.GetMe)
	app.Put("/users/me", auth, userHandler.UpdateMe)
	app.Get("/users/:id", userHandler.GetUser)

	app.Get("/games", catalogHandler.ListGames)
	app.Post("/games", auth, adminOnly, catalogHandler.CreateGame)
	app.Get("/games/:id", catalogHandler.GetGame)

	app.Get("/films", catalogHandler.ListFilms)
	app.Post("/films", auth, adminOnly, catalogHandler.CreateFilm)
	app.Get("/films/:id", catalogHandler.GetFilm)

	app.Post("/progress", auth, progressHandler.SaveProgress)
	app.Get("/progress", auth, progressHandler.GetProgress)

	app.Get("/achievements", auth, progressHandler.GetAchievements)

	app.Post("/locations", auth, progressHandler.SaveLocation)
	app.Get("/locations", auth, progressHandler.GetLocations)

	app.Get("/content", contentHandler.ListContent)
	app.Post("/content", auth, authorRoles, contentHandler.CreateContent)
	app.Get("/content/:slug", contentHandler.GetContentBySlug)

	app.Post("/analytics", auth, analyticsHandler.LogEvent)
	app.Get("/analytics/stats", auth, adminOnly, analyticsHandler.GetStats)

	app.Post("/admin/media/games", auth, adminOnly, mediaHandler.UploadGameImage)
	app.Post("/admin/media/films", auth, adminOnly, mediaHandler.UploadFilmThumbnail)
	app.Delete("/admin/media/*", auth, adminOnly, mediaHandler.DeleteMedia)
}

// @Summary Health check
// @Description This endpoint checks the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (svc *HttpService) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "QazKids API is running",
	})
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled request error")
	return shared.ResponseInternalError(c, err)
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}
