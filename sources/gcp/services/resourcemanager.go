package services

import (
	"context"

	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// ResourceManager discovers the organizations and projects visible to the
// caller, each with its IAM policy. Both are stamped with the project being
// scanned since they are not owned by it
type ResourceManager struct {
	connectOrganizations discovery.Connector[gcpshared.OrganizationsClient]
	connectProjects      discovery.Connector[gcpshared.ProjectsClient]
}

// NewResourceManager creates the Resource Manager module
func NewResourceManager(organizations discovery.Connector[gcpshared.OrganizationsClient], projects discovery.Connector[gcpshared.ProjectsClient]) *ResourceManager {
	return &ResourceManager{
		connectOrganizations: organizations,
		connectProjects:      projects,
	}
}

func (r *ResourceManager) Service() string {
	return gcpshared.ResourceManager
}

func (r *ResourceManager) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	err := discovery.WithClient(ctx, r.connectOrganizations, func(client gcpshared.OrganizationsClient) error {
		pass := kindPass[*resourcemanagerpb.Organization]{
			kind: gcpshared.ResourceManagerOrganization,
			id:   (*resourcemanagerpb.Organization).GetName,
			enrich: iamPolicy(func(ctx context.Context, org *resourcemanagerpb.Organization) (any, error) {
				return client.GetIamPolicy(ctx, &iampb.GetIamPolicyRequest{Resource: org.GetName()})
			}),
		}

		return pass.run(ctx, s, client.Search(ctx, &resourcemanagerpb.SearchOrganizationsRequest{}))
	})
	s.report(ctx, gcpshared.ResourceManagerOrganization.ResourceType, err)

	err = discovery.WithClient(ctx, r.connectProjects, func(client gcpshared.ProjectsClient) error {
		pass := kindPass[*resourcemanagerpb.Project]{
			kind: gcpshared.ResourceManagerProject,
			id:   (*resourcemanagerpb.Project).GetName,
			enrich: iamPolicy(func(ctx context.Context, project *resourcemanagerpb.Project) (any, error) {
				// Name is "projects/<number>", which is what GetIamPolicy expects
				return client.GetIamPolicy(ctx, &iampb.GetIamPolicyRequest{Resource: project.GetName()})
			}),
		}

		return pass.run(ctx, s, client.Search(ctx, &resourcemanagerpb.SearchProjectsRequest{}))
	})
	s.report(ctx, gcpshared.ResourceManagerProject.ResourceType, err)
}
