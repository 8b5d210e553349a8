package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/serigraf/bancada/internal/server"
	"github.com/spf13/cobra"
)

// newServeCmd runs the development order service the board client talks to.
func newServeCmd() *cobra.Command {
	var cfg server.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local order service for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				With().Timestamp().Logger()

			if cfg.Token == "" {
				cfg.Token = os.Getenv("BANCADA_TOKEN")
			}

			srv, err := server.New(cfg, log)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.ListenAddress).Str("db", cfg.DBPath).Msg("order service listening")
				errCh <- srv.Start()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-stop:
				log.Info().Str("signal", sig.String()).Msg("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&cfg.ListenAddress, "addr", ":8373", "listen address")
	cmd.Flags().StringVar(&cfg.DBPath, "db", "bancada.db", "SQLite database path")
	cmd.Flags().StringVar(&cfg.Token, "token", "", "bearer token required from clients (empty disables auth)")

	return cmd
}
