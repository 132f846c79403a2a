//go:generate mockgen -destination=./mocks/mock_logging_clients.go -package=mocks -source=logging-clients.go
package shared

import (
	"context"
	"fmt"

	logging "cloud.google.com/go/logging/apiv2"
	"cloud.google.com/go/logging/apiv2/loggingpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type (
	LoggingSinkIterator      = Iterator[*loggingpb.LogSink]
	LoggingBucketIterator    = Iterator[*loggingpb.LogBucket]
	LoggingExclusionIterator = Iterator[*loggingpb.LogExclusion]
	LoggingMetricIterator    = Iterator[*loggingpb.LogMetric]
)

// LoggingConfigClient covers the sink, bucket and exclusion listings, which
// all share one config client
type LoggingConfigClient interface {
	ListSinks(ctx context.Context, req *loggingpb.ListSinksRequest, opts ...gax.CallOption) LoggingSinkIterator
	ListBuckets(ctx context.Context, req *loggingpb.ListBucketsRequest, opts ...gax.CallOption) LoggingBucketIterator
	ListExclusions(ctx context.Context, req *loggingpb.ListExclusionsRequest, opts ...gax.CallOption) LoggingExclusionIterator
	Close() error
}

type loggingConfigClient struct {
	configCli *logging.ConfigClient
}

func (l loggingConfigClient) ListSinks(ctx context.Context, req *loggingpb.ListSinksRequest, opts ...gax.CallOption) LoggingSinkIterator {
	return l.configCli.ListSinks(ctx, req, opts...)
}

func (l loggingConfigClient) ListBuckets(ctx context.Context, req *loggingpb.ListBucketsRequest, opts ...gax.CallOption) LoggingBucketIterator {
	return l.configCli.ListBuckets(ctx, req, opts...)
}

func (l loggingConfigClient) ListExclusions(ctx context.Context, req *loggingpb.ListExclusionsRequest, opts ...gax.CallOption) LoggingExclusionIterator {
	return l.configCli.ListExclusions(ctx, req, opts...)
}

func (l loggingConfigClient) Close() error {
	return l.configCli.Close()
}

// NewLoggingConfigClient creates a new logging config client
func NewLoggingConfigClient(cli *logging.ConfigClient) LoggingConfigClient {
	return &loggingConfigClient{
		configCli: cli,
	}
}

// LoggingMetricsClient lists log-based metrics
type LoggingMetricsClient interface {
	ListLogMetrics(ctx context.Context, req *loggingpb.ListLogMetricsRequest, opts ...gax.CallOption) LoggingMetricIterator
	Close() error
}

type loggingMetricsClient struct {
	metricsCli *logging.MetricsClient
}

func (l loggingMetricsClient) ListLogMetrics(ctx context.Context, req *loggingpb.ListLogMetricsRequest, opts ...gax.CallOption) LoggingMetricIterator {
	return l.metricsCli.ListLogMetrics(ctx, req, opts...)
}

func (l loggingMetricsClient) Close() error {
	return l.metricsCli.Close()
}

// NewLoggingMetricsClient creates a new logging metrics client
func NewLoggingMetricsClient(cli *logging.MetricsClient) LoggingMetricsClient {
	return &loggingMetricsClient{
		metricsCli: cli,
	}
}

// LoggingConfigConnector opens a logging config client
func LoggingConfigConnector(opts ...option.ClientOption) discovery.Connector[LoggingConfigClient] {
	return func(ctx context.Context) (LoggingConfigClient, error) {
		cli, err := logging.NewConfigClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating logging config client: %w", err)
		}

		return NewLoggingConfigClient(cli), nil
	}
}

// LoggingMetricsConnector opens a logging metrics client
func LoggingMetricsConnector(opts ...option.ClientOption) discovery.Connector[LoggingMetricsClient] {
	return func(ctx context.Context) (LoggingMetricsClient, error) {
		cli, err := logging.NewMetricsClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating logging metrics client: %w", err)
		}

		return NewLoggingMetricsClient(cli), nil
	}
}
