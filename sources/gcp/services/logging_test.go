package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"cloud.google.com/go/logging/apiv2/loggingpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/overmindtech/harvester/discovery"
	"github.com/overmindtech/harvester/sources/gcp/services"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
	"github.com/overmindtech/harvester/sources/gcp/shared/mocks"
)

func TestLogging(t *testing.T) {
	ctx := context.Background()

	expectMetrics := func(client *mocks.MockLoggingMetricsClient) {
		client.EXPECT().ListLogMetrics(gomock.Any(), protoEq(&loggingpb.ListLogMetricsRequest{
			Parent: "projects/my-project-id",
		})).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogMetric{Name: "projects/my-project-id/metrics/errors", Filter: "severity>=ERROR"},
		))
		client.EXPECT().Close().Return(nil)
	}

	t.Run("every kind is emitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsClient := mocks.NewMockLoggingMetricsClient(ctrl)
		configClient := mocks.NewMockLoggingConfigClient(ctrl)

		expectMetrics(metricsClient)
		configClient.EXPECT().ListSinks(gomock.Any(), protoEq(&loggingpb.ListSinksRequest{
			Parent: "projects/my-project-id",
		})).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogSink{Name: "projects/my-project-id/sinks/audit", Destination: "storage.googleapis.com/audit-logs"},
			&loggingpb.LogSink{Name: "projects/my-project-id/sinks/_Default"},
		))
		configClient.EXPECT().ListBuckets(gomock.Any(), protoEq(&loggingpb.ListBucketsRequest{
			Parent: "projects/my-project-id/locations/-",
		})).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogBucket{Name: "projects/my-project-id/locations/global/buckets/_Default", RetentionDays: 30},
		))
		configClient.EXPECT().ListExclusions(gomock.Any(), protoEq(&loggingpb.ListExclusionsRequest{
			Parent: "projects/my-project-id",
		})).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogExclusion{Name: "projects/my-project-id/exclusions/debug", Filter: "severity=DEBUG"},
		))
		configClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewLogging(connectTo[gcpshared.LoggingMetricsClient](metricsClient), connectTo[gcpshared.LoggingConfigClient](configClient)))

		assert.Empty(t, h.reporter.Reports())

		sinks := h.resources(t, "logging:sink")
		assert.Equal(t, []string{"projects/my-project-id/sinks/audit", "projects/my-project-id/sinks/_Default"}, resourceIDs(sinks))
		assert.Equal(t, "GCP::Logging::Sink", sinks[0].ResourceType)

		var sink map[string]any
		require.NoError(t, json.Unmarshal(sinks[0].Configuration, &sink))
		assert.Equal(t, "storage.googleapis.com/audit-logs", sink["destination"])

		buckets := h.resources(t, "logging:bucket")
		require.Len(t, buckets, 1)
		assert.Equal(t, "GCP::Logging::Bucket", buckets[0].ResourceType)

		assert.Len(t, h.resources(t, "logging:exclusion"), 1)
		assert.Len(t, h.resources(t, "logging:metric"), 1)
		assert.Len(t, h.emitter.Envelopes(), 5)
	})

	t.Run("a failing sub-kind does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsClient := mocks.NewMockLoggingMetricsClient(ctrl)
		configClient := mocks.NewMockLoggingConfigClient(ctrl)

		expectMetrics(metricsClient)
		configClient.EXPECT().ListSinks(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogSink{Name: "projects/my-project-id/sinks/audit"},
		))
		configClient.EXPECT().ListBuckets(gomock.Any(), gomock.Any()).Return(&gcpshared.SliceIterator[*loggingpb.LogBucket]{
			Err: status.Error(codes.PermissionDenied, "logging.buckets.list denied"),
		})
		configClient.EXPECT().ListExclusions(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogExclusion{Name: "projects/my-project-id/exclusions/debug"},
		))
		configClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewLogging(connectTo[gcpshared.LoggingMetricsClient](metricsClient), connectTo[gcpshared.LoggingConfigClient](configClient)))

		reports := h.reporter.Reports()
		require.Len(t, reports, 1)
		assert.Equal(t, "GCP::Logging::Bucket", reports[0].ResourceType)
		assert.Equal(t, discovery.CategoryListing, discovery.CategoryOf(reports[0].Err))
		assert.Equal(t, codes.PermissionDenied, status.Code(reports[0].Err))

		assert.Len(t, h.resources(t, "logging:sink"), 1)
		assert.Empty(t, h.resources(t, "logging:bucket"))
		assert.Len(t, h.resources(t, "logging:exclusion"), 1)
		assert.Len(t, h.resources(t, "logging:metric"), 1)
	})

	t.Run("items before a mid-listing failure are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsClient := mocks.NewMockLoggingMetricsClient(ctrl)
		configClient := mocks.NewMockLoggingConfigClient(ctrl)

		expectMetrics(metricsClient)
		configClient.EXPECT().ListSinks(gomock.Any(), gomock.Any()).Return(&gcpshared.SliceIterator[*loggingpb.LogSink]{
			Items: []*loggingpb.LogSink{{Name: "projects/my-project-id/sinks/first"}},
			Err:   status.Error(codes.Unavailable, "connection reset"),
		})
		configClient.EXPECT().ListBuckets(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator[*loggingpb.LogBucket]())
		configClient.EXPECT().ListExclusions(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator[*loggingpb.LogExclusion]())
		configClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewLogging(connectTo[gcpshared.LoggingMetricsClient](metricsClient), connectTo[gcpshared.LoggingConfigClient](configClient)))

		assert.Equal(t, []string{"GCP::Logging::Sink"}, h.reporter.ResourceTypes())
		assert.Equal(t, []string{"projects/my-project-id/sinks/first"}, resourceIDs(h.resources(t, "logging:sink")))
	})

	t.Run("config client connection failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsClient := mocks.NewMockLoggingMetricsClient(ctrl)
		expectMetrics(metricsClient)

		h := newHarness()
		h.discover(ctx, services.NewLogging(connectTo[gcpshared.LoggingMetricsClient](metricsClient), failToConnect[gcpshared.LoggingConfigClient]()))

		reports := h.reporter.Reports()
		require.Len(t, reports, 1)
		assert.Equal(t, gcpshared.LoggingConfigClientType, reports[0].ResourceType)
		assert.Equal(t, discovery.CategoryConnection, discovery.CategoryOf(reports[0].Err))
		assert.ErrorIs(t, reports[0].Err, errNoCredentials)

		assert.Len(t, h.resources(t, "logging:metric"), 1)
		assert.Len(t, h.emitter.Envelopes(), 1)
	})

	t.Run("empty resource id is a mapping failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsClient := mocks.NewMockLoggingMetricsClient(ctrl)
		metricsClient.EXPECT().ListLogMetrics(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator(
			&loggingpb.LogMetric{},
			&loggingpb.LogMetric{Name: "projects/my-project-id/metrics/never-reached"},
		))
		metricsClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewLogging(connectTo[gcpshared.LoggingMetricsClient](metricsClient), failToConnect[gcpshared.LoggingConfigClient]()))

		reports := h.reporter.Reports()
		require.Len(t, reports, 2)
		assert.Equal(t, "GCP::Logging::Metric", reports[0].ResourceType)
		assert.Equal(t, discovery.CategoryMapping, discovery.CategoryOf(reports[0].Err))
		assert.ErrorIs(t, reports[0].Err, discovery.ErrEmptyResourceID)
		assert.Empty(t, h.emitter.Envelopes())
	})
}
