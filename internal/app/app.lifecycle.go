package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/shared/config"
	sharedlog "github.com/joshuarp/passhash-api/internal/shared/log"
)

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	level *slog.LevelVar,
	dbs lifecycleDatabasesIn,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf(":%d", port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			sharedlog.FollowLevel(cfg, level, logger)
			cfg.WatchChanges()

			logger.Info("fiber server started", "address", address, "config", cfg.Source())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var shutdownErrors []error
			cfg.StopWatching()

			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			if dbs.AuthDB != nil {
				if err := dbs.AuthDB.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if dbs.Redis != nil {
				if err := dbs.Redis.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleDatabasesIn struct {
	fx.In

	AuthDB *sqlx.DB      `name:"db_auth" optional:"true"`
	Redis  *redis.Client `optional:"true"`
}
