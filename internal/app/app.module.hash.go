package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/handlers"
	"github.com/joshuarp/passhash-api/internal/services"
	"github.com/joshuarp/passhash-api/internal/shared/config"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
)

// HashModule serves stateless hash inspection and needs no database.
func HashModule() fx.Option {
	return fx.Module("hash",
		fx.Provide(
			fx.Annotate(
				provideHashVerifyLimiter,
				fx.ResultTags(`name:"hash_verify_limiter"`),
			),
			fx.Annotate(
				provideHashInspectService,
				fx.As(new(handlers.HashInspectService)),
			),
			handlers.NewHashInspectHandler,
		),
		fx.Invoke(registerHashRoutes),
	)
}

func provideHashInspectService(cfg config.ConfigProvider, hasher sharedhash.Hasher) *services.HashInspectService {
	return services.NewHashInspectService(hasher, cfg.GetInt("hash.verify.max_cost"))
}
