package services_test

import (
	"context"
	"testing"

	"cloud.google.com/go/trace/apiv1/tracepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/overmindtech/harvester/discovery"
	"github.com/overmindtech/harvester/sources/gcp/services"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
	"github.com/overmindtech/harvester/sources/gcp/shared/mocks"
)

func TestTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("traces are keyed by trace id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockTraceClient(ctrl)

		mockClient.EXPECT().ListTraces(gomock.Any(), protoEq(&tracepb.ListTracesRequest{
			ProjectId: projectID,
		})).Return(gcpshared.NewSliceIterator(
			&tracepb.Trace{ProjectId: projectID, TraceId: "4bf92f3577b34da6a3ce929d0e0e4736"},
		))
		mockClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewTrace(connectTo[gcpshared.TraceClient](mockClient)))

		traces := h.resources(t, "trace:trace")
		require.Len(t, traces, 1)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traces[0].ResourceID)
		assert.Equal(t, "GCP::Trace::Trace", traces[0].ResourceType)
	})

	t.Run("zero items emits nothing and reports nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockTraceClient(ctrl)

		mockClient.EXPECT().ListTraces(gomock.Any(), gomock.Any()).Return(gcpshared.NewSliceIterator[*tracepb.Trace]())
		mockClient.EXPECT().Close().Return(nil)

		h := newHarness()
		h.discover(ctx, services.NewTrace(connectTo[gcpshared.TraceClient](mockClient)))

		assert.Empty(t, h.emitter.Envelopes())
		assert.Empty(t, h.reporter.Reports())
	})

	t.Run("connection failure", func(t *testing.T) {
		h := newHarness()
		h.discover(ctx, services.NewTrace(failToConnect[gcpshared.TraceClient]()))

		reports := h.reporter.Reports()
		require.Len(t, reports, 1)
		assert.Equal(t, "GCP::Trace::Trace", reports[0].ResourceType)
		assert.Equal(t, discovery.CategoryConnection, discovery.CategoryOf(reports[0].Err))
		assert.Empty(t, h.emitter.Envelopes())
	})
}
