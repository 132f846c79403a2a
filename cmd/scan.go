package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/overmindtech/harvester/discovery"
	"github.com/overmindtech/harvester/sinks"
	"github.com/overmindtech/harvester/sources/gcp/proc"
	"github.com/overmindtech/harvester/tracing"
)

// scanCmd runs discovery against a project
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover the resources of a GCP project",
	Long: `Runs every selected discovery module once against the project and writes
the discovered resources to the configured sinks. With --interval the scan is
repeated until the process is interrupted.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		defer tracing.LogRecoverToExit(ctx, "harvester.scan")

		return runScans(ctx, viper.GetDuration("interval"))
	},
}

// scanner holds everything that lives for the whole process, each scan gets
// a new session
type scanner struct {
	projectID string
	registry  *discovery.Registry
	emitter   discovery.Emitter
	reporter  discovery.ErrorReporter
}

func (s *scanner) scan(ctx context.Context) error {
	session := discovery.NewSession(s.projectID, tracing.Version())

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.discovery.projectID": s.projectID,
		"ovm.discovery.sessionID": session.ID,
		"ovm.discovery.services":  s.registry.Services(),
	}).Info("Starting scan")

	return s.registry.RunAll(ctx, s.projectID, session, s.emitter, s.reporter)
}

func runScans(ctx context.Context, interval time.Duration) error {
	gcpConfig, err := proc.ConfigFromViper()
	if err != nil {
		return err
	}

	promRegistry := prometheus.NewRegistry()
	metrics, err := discovery.NewMetrics(promRegistry)
	if err != nil {
		return fmt.Errorf("error creating metrics: %w", err)
	}

	registry, err := proc.Initialize(ctx, gcpConfig,
		discovery.WithParallelism(viper.GetInt("max-parallel")),
		discovery.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	out, err := openSinks(ctx, sinkConfigFromViper())
	if err != nil {
		return err
	}
	defer closeSinks(ctx, out)

	if port := viper.GetInt("metrics-port"); port != 0 {
		srv := serveMetrics(ctx, promRegistry, port)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	s := &scanner{
		projectID: gcpConfig.ProjectID,
		registry:  registry,
		emitter:   out,
		reporter:  discovery.NewLogReporter(metrics),
	}

	metricsFile := viper.GetString("metrics-file")

	for {
		if err := s.scan(ctx); err != nil {
			return err
		}

		if metricsFile != "" {
			if err := prometheus.WriteToTextfile(metricsFile, promRegistry); err != nil {
				log.WithContext(ctx).WithError(err).WithField("ovm.metrics.file", metricsFile).Error("Could not write metrics file")
			}
		}

		if interval <= 0 {
			return nil
		}

		log.WithContext(ctx).WithField("ovm.discovery.nextScan", time.Now().Add(interval).Format(time.RFC3339)).Info("Waiting for next scan")

		select {
		case <-ctx.Done():
			log.Info("Stopping")
			return nil
		case <-time.After(interval):
		}
	}
}

func closeSinks(ctx context.Context, s sinks.Multi) {
	if err := s.Close(); err != nil {
		log.WithContext(ctx).WithError(err).Error("Error closing sinks")
	}
}

func serveMetrics(ctx context.Context, reg *prometheus.Registry, port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "metrics"))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%v", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.metrics.port": port,
		"ovm.metrics.path": "/metrics",
	}).Debug("Starting metrics server")

	go func() {
		defer tracing.LogRecoverToReturn(ctx, "harvester.metrics")

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithContext(ctx).WithError(err).WithField("ovm.metrics.port", port).Error("Could not start HTTP server for metrics")
		}
	}()

	return server
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.PersistentFlags().String("gcp-project-id", "", "The project to discover resources in")
	scanCmd.PersistentFlags().StringSlice("services", nil, "Services to scan, all services when empty. See 'harvester services'")
	scanCmd.PersistentFlags().Int("max-parallel", 0, "Maximum number of services scanned at the same time, defaults to the number of CPUs")
	scanCmd.PersistentFlags().String("impersonation-service-account-email", "", "Service account to impersonate with the ambient credentials")

	// sinks
	scanCmd.PersistentFlags().StringSlice("sink", []string{sinkStdout}, "Where to write resources. Valid values: stdout, file, nats, bolt, sqlite. Can be repeated")
	scanCmd.PersistentFlags().String("output", "", "JSON lines file used by the file sink")
	scanCmd.PersistentFlags().StringSlice("nats-url", nil, "NATS servers used by the nats sink")
	scanCmd.PersistentFlags().String("nats-subject-prefix", sinks.DefaultSubjectPrefix, "Prefix of the subjects the nats sink publishes to")
	scanCmd.PersistentFlags().String("bolt-path", "", "Database file used by the bolt sink")
	scanCmd.PersistentFlags().String("sqlite-path", "", "Database file used by the sqlite sink")

	// scheduling and metrics
	scanCmd.PersistentFlags().Duration("interval", 0, "If set, repeat the scan at this interval until interrupted")
	scanCmd.PersistentFlags().Int("metrics-port", 0, "If set, serve Prometheus metrics on this port at /metrics")
	scanCmd.PersistentFlags().String("metrics-file", "", "If set, write Prometheus metrics to this file after every scan")

	cobra.CheckErr(viper.BindPFlags(scanCmd.PersistentFlags()))
}
