package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/handlers"
	"github.com/joshuarp/passhash-api/internal/repository"
	"github.com/joshuarp/passhash-api/internal/services"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				provideAuthPostgresSQLX,
				fx.ResultTags(`name:"db_auth"`),
			),
			fx.Annotate(
				provideLoginAttemptsLimiter,
				fx.ResultTags(`name:"login_attempts_limiter"`),
			),
			fx.Annotate(
				repository.NewCredentialRepository,
				fx.ParamTags(`name:"db_auth"`),
				fx.As(
					new(services.AuthLoginRepository),
					new(services.AuthRegisterRepository),
					new(services.AuthPasswordRepository),
				),
			),
			fx.Annotate(
				services.NewAuthLoginService,
				fx.ParamTags(``, ``, ``, `name:"login_attempts_limiter"`, ``),
				fx.As(new(handlers.AuthLoginService)),
			),
			fx.Annotate(
				services.NewAuthRegisterService,
				fx.As(new(handlers.AuthRegisterService)),
			),
			fx.Annotate(
				services.NewAuthPasswordService,
				fx.As(new(handlers.AuthPasswordService)),
			),
			handlers.NewAuthLoginHandler,
			handlers.NewAuthRegisterHandler,
			handlers.NewAuthPasswordHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}
