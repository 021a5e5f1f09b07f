package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/shared/config"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
	sharedjwt "github.com/joshuarp/passhash-api/internal/shared/jwt"
	sharedlog "github.com/joshuarp/passhash-api/internal/shared/log"
	shareduid "github.com/joshuarp/passhash-api/internal/shared/uid"
)

const envPrefix = "PASSHASH"

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewLevel,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideUIDGenerator,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if !isSingleBinaryBin(bin) {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		opts.EnvPrefix = envPrefix
		opts.Defaults = config.Defaults()

		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      cfg.GetString("app.name"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func providePasswordHasher(cfg config.ConfigProvider) (sharedhash.Hasher, error) {
	hasher, err := sharedhash.New(sharedhash.Options{
		Strategy: sharedhash.StrategyBcrypt,
		Cost:     cfg.GetInt("hash.bcrypt.cost"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init password hasher: %w", err)
	}

	return hasher, nil
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		return nil, fmt.Errorf("app: security.jwt.secret is required")
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}

func provideUIDGenerator(cfg config.ConfigProvider) (shareduid.UIDGenerator, error) {
	strategy, err := shareduid.ParseStrategy(cfg.GetString("uid.strategy"))
	if err != nil {
		return nil, fmt.Errorf("app: failed to init uid generator: %w", err)
	}

	generator, err := shareduid.New(shareduid.Options{
		Strategy: strategy,
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init uid generator: %w", err)
	}

	return generator, nil
}
