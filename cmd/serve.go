package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/attribution/internal/httpapi"
	"github.com/huangsam/attribution/internal/logger"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the attribution API over HTTP",
	Long: `Start an HTTP server exposing attribution, comparison, variance and report
endpoints under /api, plus /healthz and Prometheus metrics on /metrics.

Logs are structured (JSON by default) and written to stderr. The server drains
in-flight requests on SIGINT or SIGTERM.

Examples:
  attribution serve --addr :8080
  attribution serve --store-backend none --log-format text --cors-origins http://localhost:3000`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.WithComponent("cmd").WithField("store_backend", cfg.StoreBackend).Info("starting attribution API")
		return httpapi.New(cfg, storeManager, log).Run(ctx)
	},
}
