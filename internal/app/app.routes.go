package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/handlers"
	"github.com/joshuarp/passhash-api/internal/middlewares"
	"github.com/joshuarp/passhash-api/internal/shared/config"
	sharedjwt "github.com/joshuarp/passhash-api/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/passhash-api/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPCORSMiddleware(cfg.GetStringSlice("server.cors.allow_origins")))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager, middlewares.AuthPublicRoutes...))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public          fiber.Router `name:"api_public"`
	Protected       fiber.Router `name:"api_protected"`
	LoginHandler    *handlers.AuthLoginHandler
	RegisterHandler *handlers.AuthRegisterHandler
	PasswordHandler *handlers.AuthPasswordHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.LoginHandler.Register(in.Public)
	in.RegisterHandler.Register(in.Public)
	in.PasswordHandler.Register(in.Protected)
}

type hashRoutesIn struct {
	fx.In
	Protected   fiber.Router            `name:"api_protected"`
	RateLimiter sharedratelimit.Limiter `name:"hash_verify_limiter"`
	Logger      *slog.Logger
	Handler     *handlers.HashInspectHandler
}

func registerHashRoutes(in hashRoutesIn) {
	verifyRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerUserKeyExtractor("hash_verify"),
	})

	in.Handler.Register(in.Protected, verifyRateLimit)
}
