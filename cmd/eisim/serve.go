package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/eisim/internal/api"
	"github.com/rgehrsitz/eisim/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations as a JSON API",
	Long: `Serve the simulator over HTTP:

  POST /api/simulate              simulation, consequences and alerts
  GET  /api/thresholds?activity=  ceilings and rates for an activity
  GET  /api/regimes[?activity=]   tax regimes available to each activity
  GET  /api/health                liveness`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = app.settings.APIAddress
		}

		// Server logs are always structured
		logger, err := logging.New(logging.Options{Level: app.settings.LogLevel, Format: "json"})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		server := api.NewServer(app.thresholds, app.settings.Language, logger)
		server.Version = version

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from settings, :8080)")

	rootCmd.AddCommand(serveCmd)
}
