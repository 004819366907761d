package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	docs "github.com/kurs-wjo/wjo_api/docs"
	"github.com/kurs-wjo/wjo_api/services/handlers"
	"github.com/kurs-wjo/wjo_api/shared"
)

// RouteGuard exposes the auth gates the HTTP layer mounts. Implemented by
// the middleware services; registered under their own ids.
type RouteGuard interface {
	RequiredAuth() fiber.Handler
}

type AdminGuard interface {
	RequiredAdmin() fiber.Handler
}

type HttpService struct {
	context.DefaultService

	deviceSvc     *DeviceService
	gameSvc       *GameService
	profileSvc    *ProfileService
	contentSvc    *ContentService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	authGuard  RouteGuard
	adminGuard AdminGuard

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

// Middleware service ids, mirrored here to avoid an import cycle with the
// middleware package.
const (
	authMiddlewareId  = "auth"
	adminMiddlewareId = "admin"
)

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
	svc.deviceSvc = svc.Service(DEVICE_SVC).(*DeviceService)
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.profileSvc = svc.Service(PROFILE_SVC).(*ProfileService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.authGuard = svc.Service(authMiddlewareId).(RouteGuard)
	svc.adminGuard = svc.Service(adminMiddlewareId).(AdminGuard)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.errorHandler,
		JSONEncoder:  shared.MarshalJSON,
		JSONDecoder:  shared.UnmarshalJSON,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Admin-Key",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.WithField("port", svc.port).Info("http server starting")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	deviceHandler := handlers.NewDeviceHandler(svc.deviceSvc)
	gameHandler := handlers.NewGameHandler(svc.gameSvc)
	profileHandler := handlers.NewProfileHandler(svc.profileSvc)
	adminHandler := handlers.NewAdminHandler(svc.contentSvc, svc.mediaSvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	device := v1.Group("/device")
	device.Post("/register", deviceHandler.RegisterDevice)
	device.Post("/refresh", deviceHandler.RefreshToken)

	game := v1.Group("/game", svc.authGuard.RequiredAuth())
	game.Post("/session", gameHandler.StartSession)
	game.Get("/session/:sessionId", gameHandler.GetSession)
	game.Post("/session/:sessionId/action", gameHandler.HandleAction)
	game.Delete("/session/:sessionId", gameHandler.EndSession)
	game.Get("/dashboard", gameHandler.Dashboard)

	profile := v1.Group("/profile", svc.authGuard.RequiredAuth())
	profile.Get("/", profileHandler.GetProfile)
	profile.Put("/language", profileHandler.SetLanguage)
	profile.Put("/daily-goal", profileHandler.SetDailyGoal)
	profile.Post("/reset", profileHandler.ResetProgress)

	admin := v1.Group("/admin", svc.adminGuard.RequiredAdmin())
	admin.Get("/questions", adminHandler.ListQuestions)
	admin.Post("/questions", adminHandler.CreateQuestion)
	admin.Post("/questions/import", adminHandler.ImportQuestions)
	admin.Get("/questions/:questionId", adminHandler.GetQuestion)
	admin.Put("/questions/:questionId", adminHandler.UpdateQuestion)
	admin.Delete("/questions/:questionId", adminHandler.DeleteQuestion)
	admin.Post("/questions/:questionId/image", adminHandler.UploadQuestionImage)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

// errorHandler turns returned errors into the response envelope. AppErrors
// keep their status; anything else is a 500.
func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("unhandled request error")
	return shared.ResponseInternalError(c, err)
}
