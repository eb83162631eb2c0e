package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/shell"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local identification shell",
		Long: `Starts the local web shell on the specified port.

The shell mirrors the mobile capture-and-identify flow: POST an image
to /api/identify, read the session history from /api/history, and the
available attributes from /api/fields. History lives in memory only
and is gone when the shell stops.`,
		Example: `  # Start shell on the configured port
  boatid serve

  # Start shell on a custom port
  boatid serve --port 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, settings, err := newClient()
			if err != nil {
				return err
			}

			handler := shell.New(client, settings.DefaultFields)

			if port == "" {
				port = settings.ShellPort
			}
			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: handler.Routes(),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Identification shell available", "addr", addr, "url", "http://localhost"+addr, "api", settings.BaseURL())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down shell...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Shell shutdown failed", "err", err)
					return err
				}
				slog.Info("Shell stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from config)")

	return cmd
}
