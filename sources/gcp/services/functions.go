package services

import (
	"context"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/iam/apiv1/iampb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// Functions discovers Cloud Functions in every location of a project, along
// with the IAM policy of each function
type Functions struct {
	connect discovery.Connector[gcpshared.FunctionsClient]
}

// NewFunctions creates the Cloud Functions module
func NewFunctions(connect discovery.Connector[gcpshared.FunctionsClient]) *Functions {
	return &Functions{connect: connect}
}

func (f *Functions) Service() string {
	return gcpshared.Functions
}

func (f *Functions) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	err := discovery.WithClient(ctx, f.connect, func(client gcpshared.FunctionsClient) error {
		pass := kindPass[*functionspb.CloudFunction]{
			kind: gcpshared.FunctionsFunction,
			id:   (*functionspb.CloudFunction).GetName,
			enrich: iamPolicy(func(ctx context.Context, fn *functionspb.CloudFunction) (any, error) {
				return client.GetIamPolicy(ctx, &iampb.GetIamPolicyRequest{
					Resource: fn.GetName(),
				})
			}),
		}

		return pass.run(ctx, s, client.List(ctx, &functionspb.ListFunctionsRequest{
			Parent: gcpshared.AllLocationsParent(projectID),
		}))
	})

	s.report(ctx, gcpshared.FunctionsFunction.ResourceType, err)
}
