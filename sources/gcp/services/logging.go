package services

import (
	"context"

	"cloud.google.com/go/logging/apiv2/loggingpb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// Logging discovers log-based metrics, sinks, buckets and exclusions. Each
// kind is listed in its own pass so that one failing listing does not hide
// the others
type Logging struct {
	connectMetrics discovery.Connector[gcpshared.LoggingMetricsClient]
	connectConfig  discovery.Connector[gcpshared.LoggingConfigClient]
}

// NewLogging creates the Cloud Logging module
func NewLogging(metrics discovery.Connector[gcpshared.LoggingMetricsClient], config discovery.Connector[gcpshared.LoggingConfigClient]) *Logging {
	return &Logging{
		connectMetrics: metrics,
		connectConfig:  config,
	}
}

func (l *Logging) Service() string {
	return gcpshared.Logging
}

func (l *Logging) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	l.discoverMetrics(ctx, s)
	l.discoverConfig(ctx, s)
}

func (l *Logging) discoverMetrics(ctx context.Context, s scan) {
	err := discovery.WithClient(ctx, l.connectMetrics, func(client gcpshared.LoggingMetricsClient) error {
		pass := kindPass[*loggingpb.LogMetric]{
			kind: gcpshared.LoggingMetric,
			id:   (*loggingpb.LogMetric).GetName,
		}

		return pass.run(ctx, s, client.ListLogMetrics(ctx, &loggingpb.ListLogMetricsRequest{
			Parent: gcpshared.ProjectParent(s.projectID),
		}))
	})

	s.report(ctx, gcpshared.LoggingMetric.ResourceType, err)
}

// discoverConfig lists sinks, buckets and exclusions over one config client.
// Failing to open the client is reported once against the client itself
func (l *Logging) discoverConfig(ctx context.Context, s scan) {
	err := discovery.WithClient(ctx, l.connectConfig, func(client gcpshared.LoggingConfigClient) error {
		sinks := kindPass[*loggingpb.LogSink]{
			kind: gcpshared.LoggingSink,
			id:   (*loggingpb.LogSink).GetName,
		}
		s.report(ctx, gcpshared.LoggingSink.ResourceType, sinks.run(ctx, s, client.ListSinks(ctx, &loggingpb.ListSinksRequest{
			Parent: gcpshared.ProjectParent(s.projectID),
		})))

		buckets := kindPass[*loggingpb.LogBucket]{
			kind: gcpshared.LoggingBucket,
			id:   (*loggingpb.LogBucket).GetName,
		}
		s.report(ctx, gcpshared.LoggingBucket.ResourceType, buckets.run(ctx, s, client.ListBuckets(ctx, &loggingpb.ListBucketsRequest{
			Parent: gcpshared.AllLocationsParent(s.projectID),
		})))

		exclusions := kindPass[*loggingpb.LogExclusion]{
			kind: gcpshared.LoggingExclusion,
			id:   (*loggingpb.LogExclusion).GetName,
		}
		s.report(ctx, gcpshared.LoggingExclusion.ResourceType, exclusions.run(ctx, s, client.ListExclusions(ctx, &loggingpb.ListExclusionsRequest{
			Parent: gcpshared.ProjectParent(s.projectID),
		})))

		return nil
	})

	s.report(ctx, gcpshared.LoggingConfigClientType, err)
}
