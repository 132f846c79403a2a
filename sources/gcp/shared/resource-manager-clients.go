//go:generate mockgen -destination=./mocks/mock_resource_manager_clients.go -package=mocks -source=resource-manager-clients.go
package shared

import (
	"context"
	"fmt"

	"cloud.google.com/go/iam/apiv1/iampb"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type (
	OrganizationIterator = Iterator[*resourcemanagerpb.Organization]
	ProjectIterator      = Iterator[*resourcemanagerpb.Project]
)

// OrganizationsClient searches the organizations visible to the caller
type OrganizationsClient interface {
	Search(ctx context.Context, req *resourcemanagerpb.SearchOrganizationsRequest, opts ...gax.CallOption) OrganizationIterator
	GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error)
	Close() error
}

type organizationsClient struct {
	client *resourcemanager.OrganizationsClient
}

func (c organizationsClient) Search(ctx context.Context, req *resourcemanagerpb.SearchOrganizationsRequest, opts ...gax.CallOption) OrganizationIterator {
	return c.client.SearchOrganizations(ctx, req, opts...)
}

func (c organizationsClient) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error) {
	return c.client.GetIamPolicy(ctx, req, opts...)
}

func (c organizationsClient) Close() error {
	return c.client.Close()
}

// NewOrganizationsClient creates a new OrganizationsClient
func NewOrganizationsClient(client *resourcemanager.OrganizationsClient) OrganizationsClient {
	return &organizationsClient{
		client: client,
	}
}

// ProjectsClient searches the projects visible to the caller
type ProjectsClient interface {
	Search(ctx context.Context, req *resourcemanagerpb.SearchProjectsRequest, opts ...gax.CallOption) ProjectIterator
	GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error)
	Close() error
}

type projectsClient struct {
	client *resourcemanager.ProjectsClient
}

func (c projectsClient) Search(ctx context.Context, req *resourcemanagerpb.SearchProjectsRequest, opts ...gax.CallOption) ProjectIterator {
	return c.client.SearchProjects(ctx, req, opts...)
}

func (c projectsClient) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error) {
	return c.client.GetIamPolicy(ctx, req, opts...)
}

func (c projectsClient) Close() error {
	return c.client.Close()
}

// NewProjectsClient creates a new ProjectsClient
func NewProjectsClient(client *resourcemanager.ProjectsClient) ProjectsClient {
	return &projectsClient{
		client: client,
	}
}

// OrganizationsConnector opens a resource manager organizations client
func OrganizationsConnector(opts ...option.ClientOption) discovery.Connector[OrganizationsClient] {
	return func(ctx context.Context) (OrganizationsClient, error) {
		client, err := resourcemanager.NewOrganizationsClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating organizations client: %w", err)
		}

		return NewOrganizationsClient(client), nil
	}
}

// ProjectsConnector opens a resource manager projects client
func ProjectsConnector(opts ...option.ClientOption) discovery.Connector[ProjectsClient] {
	return func(ctx context.Context) (ProjectsClient, error) {
		client, err := resourcemanager.NewProjectsClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating projects client: %w", err)
		}

		return NewProjectsClient(client), nil
	}
}
