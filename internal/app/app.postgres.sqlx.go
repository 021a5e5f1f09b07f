package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/shared/config"
)

const authDBModule = "auth"

type dbProviderIn struct {
	fx.In

	Config config.ConfigProvider
	Bin    string `name:"bin"`
}

func provideAuthPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	return providePostgresSQLXForModule(in.Config, in.Bin, authDBModule)
}

func providePostgresSQLXForModule(cfg config.ConfigProvider, bin, module string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", postgresDSN(cfg, bin, module))
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}

	if maxOpen := moduleDBInt(cfg, module, "max_open_conns", !isSingleBinaryBin(bin)); maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	return db, nil
}

func postgresDSN(cfg config.ConfigProvider, bin, module string) string {
	useModuleConfig := !isSingleBinaryBin(bin)

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)
}

// moduleDBString resolves database.<module>.<key> for split binaries, then database.<key>.
func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetString(moduleKey)
		}
	}

	return cfg.GetString(fmt.Sprintf("database.%s", key))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetInt(moduleKey)
		}
	}

	return cfg.GetInt(fmt.Sprintf("database.%s", key))
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}
