package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openkraft/kraftreview/internal/adapters/inbound/httpapi"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/logging"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/metrics"
	"github.com/openkraft/kraftreview/internal/application"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the review HTTP API",
		Long:  "Serve POST /review, GET /rules and the metrics endpoint, plus the built front-end when one is present. Stops on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			rec := metrics.New(reg)

			svc := application.NewReviewService(
				application.WithRecorder(rec),
				application.WithLogger(logger),
			)
			srv := httpapi.New(cfg, svc,
				httpapi.WithLogger(logger),
				httpapi.WithMetrics(rec, metrics.Handler(reg)),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting kraftreview",
				zap.String("version", version),
				zap.String("addr", cfg.Server.Addr),
				zap.Bool("metrics", cfg.Metrics.Enabled),
			)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (defaults to .kraftreview.yaml)")
	cmd.Flags().String("addr", "", "Listen address, e.g. :8000")
	cmd.Flags().String("static-dir", "", "Directory holding the built front-end")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().String("log-format", "", "Log format: json or console")
	cmd.Flags().String("log-file", "", "Write logs to this file with rotation")

	return cmd
}
