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
	"github.com/rs/zerolog/log"

	_ "github.com/retroden/arcade_api/docs"
	"github.com/retroden/arcade_api/services/handlers"
	"github.com/retroden/arcade_api/shared"
)

type HttpService struct {
	context.DefaultService

	jwtSvc        *JWTService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	userHandler    *handlers.UserHandler
	gameHandler    *handlers.GameHandler
	sessionHandler *handlers.SessionHandler
	statsHandler   *handlers.StatsHandler
	searchHandler  *handlers.SearchHandler
	adminHandler   *handlers.AdminHandler

	port   int
	server *fiber.App
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
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.userHandler = handlers.NewUserHandler(svc.Service(USER_SVC).(*UserService))
	svc.gameHandler = handlers.NewGameHandler(svc.Service(GAME_SVC).(*GameService))
	svc.sessionHandler = handlers.NewSessionHandler(svc.Service(SESSION_SVC).(*SessionService))
	svc.statsHandler = handlers.NewStatsHandler(svc.Service(STATS_SVC).(*StatsService))
	svc.searchHandler = handlers.NewSearchHandler(svc.Service(SEARCH_SVC).(*SearchService))
	svc.adminHandler = handlers.NewAdminHandler(svc.jwtSvc, svc.Service(SEED_SVC).(*SeedService))

	config := fiber.Config{
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: svc.handleError,
	}

	app := fiber.New(config)
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1", svc.rateLimitSvc.Limit("api_general"))

	v1.Get("/ping", svc.ping)

	admin := v1.Group("/admin")
	admin.Post("/token", svc.adminHandler.MintToken)
	admin.Post("/seed", svc.jwtSvc.RequireAdmin(), svc.adminHandler.Reseed)

	users := v1.Group("/users")
	users.Get("/", svc.userHandler.GetUsers)
	users.Post("/", svc.rateLimitSvc.Limit("create_user"), svc.userHandler.CreateUser)
	users.Post("/upload-avatar", svc.userHandler.UploadAvatar)
	users.Get("/:id", svc.userHandler.GetUser)
	users.Put("/:id", svc.userHandler.UpdateUser)
	users.Delete("/:id", svc.userHandler.DeleteUser)

	games := v1.Group("/games")
	games.Get("/", svc.gameHandler.GetGames)
	games.Post("/", svc.jwtSvc.RequireAdmin(), svc.gameHandler.CreateGame)
	games.Get("/:id", svc.gameHandler.GetGame)
	games.Put("/:id", svc.jwtSvc.RequireAdmin(), svc.gameHandler.UpdateGame)
	games.Post("/:id/artwork", svc.jwtSvc.RequireAdmin(), svc.gameHandler.UploadArtwork)

	sessions := v1.Group("/sessions")
	sessions.Post("/", svc.rateLimitSvc.Limit("log_session"), svc.sessionHandler.LogSession)
	sessions.Post("/start", svc.sessionHandler.StartSession)
	sessions.Put("/:id/stop", svc.sessionHandler.StopSession)
	sessions.Get("/stats", svc.sessionHandler.GetSessions)
	sessions.Get("/user/:userId", svc.sessionHandler.GetUserSessions)

	statistics := v1.Group("/statistics")
	statistics.Get("/user/:userId", svc.statsHandler.GetUserStats)
	statistics.Get("/sessions", svc.statsHandler.GetAllSessionDetails)
	statistics.Get("/leaderboard", svc.statsHandler.GetSessionLeaderboard)
	statistics.Get("/leaderboard/all-users", svc.statsHandler.GetAllUsersLeaderboard)
	statistics.Get("/game-frequency", svc.statsHandler.GetGameFrequency)
	statistics.Get("/weekly", svc.statsHandler.GetWeeklySeries)

	v1.Get("/leaderboard", svc.statsHandler.GetLeaderboard)

	v1.Get("/search", svc.searchHandler.GlobalSearch)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
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
