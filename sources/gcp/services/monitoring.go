package services

import (
	"context"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// Monitoring discovers groups, alerting policies and monitored services.
// Every kind uses its own client and is reported independently
type Monitoring struct {
	connectGroups   discovery.Connector[gcpshared.MonitoringGroupClient]
	connectPolicies discovery.Connector[gcpshared.MonitoringAlertPolicyClient]
	connectServices discovery.Connector[gcpshared.MonitoringServiceClient]
}

// NewMonitoring creates the Cloud Monitoring module
func NewMonitoring(
	groups discovery.Connector[gcpshared.MonitoringGroupClient],
	policies discovery.Connector[gcpshared.MonitoringAlertPolicyClient],
	services discovery.Connector[gcpshared.MonitoringServiceClient],
) *Monitoring {
	return &Monitoring{
		connectGroups:   groups,
		connectPolicies: policies,
		connectServices: services,
	}
}

func (m *Monitoring) Service() string {
	return gcpshared.Monitoring
}

func (m *Monitoring) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)
	// Monitoring list calls take the project as "name" or "parent"
	parent := gcpshared.ProjectParent(projectID)

	err := discovery.WithClient(ctx, m.connectGroups, func(client gcpshared.MonitoringGroupClient) error {
		pass := kindPass[*monitoringpb.Group]{
			kind: gcpshared.MonitoringGroup,
			id:   (*monitoringpb.Group).GetName,
		}

		return pass.run(ctx, s, client.ListGroups(ctx, &monitoringpb.ListGroupsRequest{Name: parent}))
	})
	s.report(ctx, gcpshared.MonitoringGroup.ResourceType, err)

	err = discovery.WithClient(ctx, m.connectPolicies, func(client gcpshared.MonitoringAlertPolicyClient) error {
		pass := kindPass[*monitoringpb.AlertPolicy]{
			kind: gcpshared.MonitoringAlertPolicy,
			id:   (*monitoringpb.AlertPolicy).GetName,
		}

		return pass.run(ctx, s, client.ListAlertPolicies(ctx, &monitoringpb.ListAlertPoliciesRequest{Name: parent}))
	})
	s.report(ctx, gcpshared.MonitoringAlertPolicy.ResourceType, err)

	err = discovery.WithClient(ctx, m.connectServices, func(client gcpshared.MonitoringServiceClient) error {
		pass := kindPass[*monitoringpb.Service]{
			kind: gcpshared.MonitoringService,
			id:   (*monitoringpb.Service).GetName,
		}

		return pass.run(ctx, s, client.ListServices(ctx, &monitoringpb.ListServicesRequest{Parent: parent}))
	})
	s.report(ctx, gcpshared.MonitoringService.ResourceType, err)
}
