package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/internal/httpapi"
	"github.com/shipshapehq/shipshape/internal/iostore"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring and clustering HTTP API.",
	Long: `Start an HTTP server exposing the engine over a JSON API.

Endpoints:
  GET  /healthz                                - store health
  GET  /api/v1/clusters                        - population clustering
  POST /api/v1/classifications                 - bulk user classification
  GET  /api/v1/users/{userID}/classification   - one user's cluster
  GET  /api/v1/users/{userID}/progress         - one user's progress score
  GET  /api/v1/hours/classification?hours=12.5 - hour banding

Population analyses are cached in-process and rebuilt from the store when
older than --stale-after. Caches are warmed at startup on a best-effort basis.

Examples:
  # Serve on the default address
  shipshape serve

  # Serve on a custom port against MySQL
  shipshape serve --http-addr :9090 --store-backend mysql --store-db-connect "user:pass@tcp(localhost:3306)/shipshape"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Pre-build the caches so the first request doesn't pay for a rebuild.
		analyzer.Warmup(rootCtx)

		srv := httpapi.NewServer(cfg.HTTPAddr, analyzer, iostore.Manager.Users())

		errCh := make(chan error, 1)
		go func() {
			fmt.Printf("Listening on %s\n", cfg.HTTPAddr)
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
		case sig := <-sigCh:
			fmt.Printf("Received %s, shutting down...\n", sig)
			ctx, cancel := context.WithTimeout(rootCtx, shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				contract.LogWarn("graceful shutdown failed", err)
			}
		}

		return nil
	},
}
