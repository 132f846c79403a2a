//go:generate mockgen -destination=./mocks/mock_trace_client.go -package=mocks -source=trace-clients.go
package shared

import (
	"context"
	"fmt"

	cloudtrace "cloud.google.com/go/trace/apiv1"
	"cloud.google.com/go/trace/apiv1/tracepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type TraceIterator = Iterator[*tracepb.Trace]

// TraceClient lists the traces stored in Cloud Trace
type TraceClient interface {
	ListTraces(ctx context.Context, req *tracepb.ListTracesRequest, opts ...gax.CallOption) TraceIterator
	Close() error
}

type traceClient struct {
	client *cloudtrace.Client
}

func (c traceClient) ListTraces(ctx context.Context, req *tracepb.ListTracesRequest, opts ...gax.CallOption) TraceIterator {
	return c.client.ListTraces(ctx, req, opts...)
}

func (c traceClient) Close() error {
	return c.client.Close()
}

// NewTraceClient creates a new TraceClient
func NewTraceClient(client *cloudtrace.Client) TraceClient {
	return &traceClient{
		client: client,
	}
}

// TraceConnector opens a Cloud Trace client
func TraceConnector(opts ...option.ClientOption) discovery.Connector[TraceClient] {
	return func(ctx context.Context) (TraceClient, error) {
		client, err := cloudtrace.NewClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating trace client: %w", err)
		}

		return NewTraceClient(client), nil
	}
}
