//go:generate mockgen -destination=./mocks/mock_functions_client.go -package=mocks -source=functions-clients.go
package shared

import (
	"context"
	"fmt"

	functions "cloud.google.com/go/functions/apiv1"
	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/iam/apiv1/iampb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type FunctionsIterator = Iterator[*functionspb.CloudFunction]

// FunctionsClient interface for Cloud Functions operations
type FunctionsClient interface {
	List(ctx context.Context, req *functionspb.ListFunctionsRequest, opts ...gax.CallOption) FunctionsIterator
	GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error)
	Close() error
}

type functionsClient struct {
	client *functions.CloudFunctionsClient
}

func (c functionsClient) List(ctx context.Context, req *functionspb.ListFunctionsRequest, opts ...gax.CallOption) FunctionsIterator {
	return c.client.ListFunctions(ctx, req, opts...)
}

func (c functionsClient) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error) {
	return c.client.GetIamPolicy(ctx, req, opts...)
}

func (c functionsClient) Close() error {
	return c.client.Close()
}

// NewFunctionsClient creates a new FunctionsClient
func NewFunctionsClient(client *functions.CloudFunctionsClient) FunctionsClient {
	return &functionsClient{
		client: client,
	}
}

// FunctionsConnector opens a Cloud Functions client
func FunctionsConnector(opts ...option.ClientOption) discovery.Connector[FunctionsClient] {
	return func(ctx context.Context) (FunctionsClient, error) {
		client, err := functions.NewCloudFunctionsClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating Cloud Functions client: %w", err)
		}

		return NewFunctionsClient(client), nil
	}
}
