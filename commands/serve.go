package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sjsage522/zenlesscollector/logger"
	"sjsage522/zenlesscollector/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI for fetching and browsing active codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setup()
		if err != nil {
			return err
		}
		defer services.Cleanup()

		if services.Config.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		ui := server.New(services.Worker, services.Config.CurrencyName)
		srv := &http.Server{
			Addr:              services.Config.ListenAddr,
			Handler:           ui.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		return listenAndServe(cmd.Context(), srv)
	},
}

// listenAndServe runs srv until ctx is cancelled and then shuts it down
func listenAndServe(ctx context.Context, srv *http.Server) error {
	log := logger.ForServer()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Web UI listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down web UI...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Web UI stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
