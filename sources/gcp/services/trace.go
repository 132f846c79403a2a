package services

import (
	"context"

	"cloud.google.com/go/trace/apiv1/tracepb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// Trace discovers the traces stored in Cloud Trace, identified by trace id
type Trace struct {
	connect discovery.Connector[gcpshared.TraceClient]
}

// NewTrace creates the Cloud Trace module
func NewTrace(connect discovery.Connector[gcpshared.TraceClient]) *Trace {
	return &Trace{connect: connect}
}

func (t *Trace) Service() string {
	return gcpshared.Trace
}

func (t *Trace) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	err := discovery.WithClient(ctx, t.connect, func(client gcpshared.TraceClient) error {
		pass := kindPass[*tracepb.Trace]{
			kind: gcpshared.TraceTrace,
			id:   (*tracepb.Trace).GetTraceId,
		}

		return pass.run(ctx, s, client.ListTraces(ctx, &tracepb.ListTracesRequest{ProjectId: projectID}))
	})

	s.report(ctx, gcpshared.TraceTrace.ResourceType, err)
}
