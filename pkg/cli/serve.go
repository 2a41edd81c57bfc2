package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/newgit/pkg/controller/server"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr     string
		apiToken types.APIToken
		cfg      provisioner
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("NEWGIT_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "Bearer token required on /api routes",
			Sources:     cli.EnvVars("NEWGIT_API_TOKEN"),
			Destination: (*string)(&apiToken),
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags:   slice.Flatten(serveFlags, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("APIToken", apiToken),
				slog.Any("Config", &cfg),
			)

			uc, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}

			if err := uc.Warmup(ctx); err != nil {
				return err
			}

			var serverOptions []server.Option
			if apiToken != "" {
				serverOptions = append(serverOptions, server.WithAPIToken(apiToken))
			}
			s := server.New(uc, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Synchronous provisioning waits for branch readiness.
				WriteTimeout: 3 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
