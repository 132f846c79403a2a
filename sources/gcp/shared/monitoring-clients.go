//go:generate mockgen -destination=./mocks/mock_monitoring_clients.go -package=mocks -source=monitoring-clients.go
package shared

import (
	"context"
	"fmt"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type (
	MonitoringGroupIterator       = Iterator[*monitoringpb.Group]
	MonitoringAlertPolicyIterator = Iterator[*monitoringpb.AlertPolicy]
	MonitoringServiceIterator     = Iterator[*monitoringpb.Service]
)

// MonitoringGroupClient lists monitoring groups
type MonitoringGroupClient interface {
	ListGroups(ctx context.Context, req *monitoringpb.ListGroupsRequest, opts ...gax.CallOption) MonitoringGroupIterator
	Close() error
}

type monitoringGroupClient struct {
	client *monitoring.GroupClient
}

func (c monitoringGroupClient) ListGroups(ctx context.Context, req *monitoringpb.ListGroupsRequest, opts ...gax.CallOption) MonitoringGroupIterator {
	return c.client.ListGroups(ctx, req, opts...)
}

func (c monitoringGroupClient) Close() error {
	return c.client.Close()
}

// NewMonitoringGroupClient creates a new MonitoringGroupClient
func NewMonitoringGroupClient(client *monitoring.GroupClient) MonitoringGroupClient {
	return &monitoringGroupClient{
		client: client,
	}
}

// MonitoringAlertPolicyClient lists alerting policies
type MonitoringAlertPolicyClient interface {
	ListAlertPolicies(ctx context.Context, req *monitoringpb.ListAlertPoliciesRequest, opts ...gax.CallOption) MonitoringAlertPolicyIterator
	Close() error
}

type monitoringAlertPolicyClient struct {
	client *monitoring.AlertPolicyClient
}

func (c monitoringAlertPolicyClient) ListAlertPolicies(ctx context.Context, req *monitoringpb.ListAlertPoliciesRequest, opts ...gax.CallOption) MonitoringAlertPolicyIterator {
	return c.client.ListAlertPolicies(ctx, req, opts...)
}

func (c monitoringAlertPolicyClient) Close() error {
	return c.client.Close()
}

// NewMonitoringAlertPolicyClient creates a new MonitoringAlertPolicyClient
func NewMonitoringAlertPolicyClient(client *monitoring.AlertPolicyClient) MonitoringAlertPolicyClient {
	return &monitoringAlertPolicyClient{
		client: client,
	}
}

// MonitoringServiceClient lists the services defined for service monitoring
type MonitoringServiceClient interface {
	ListServices(ctx context.Context, req *monitoringpb.ListServicesRequest, opts ...gax.CallOption) MonitoringServiceIterator
	Close() error
}

type monitoringServiceClient struct {
	client *monitoring.ServiceMonitoringClient
}

func (c monitoringServiceClient) ListServices(ctx context.Context, req *monitoringpb.ListServicesRequest, opts ...gax.CallOption) MonitoringServiceIterator {
	return c.client.ListServices(ctx, req, opts...)
}

func (c monitoringServiceClient) Close() error {
	return c.client.Close()
}

// NewMonitoringServiceClient creates a new MonitoringServiceClient
func NewMonitoringServiceClient(client *monitoring.ServiceMonitoringClient) MonitoringServiceClient {
	return &monitoringServiceClient{
		client: client,
	}
}

// MonitoringGroupConnector opens a monitoring group client
func MonitoringGroupConnector(opts ...option.ClientOption) discovery.Connector[MonitoringGroupClient] {
	return func(ctx context.Context) (MonitoringGroupClient, error) {
		client, err := monitoring.NewGroupClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating monitoring group client: %w", err)
		}

		return NewMonitoringGroupClient(client), nil
	}
}

// MonitoringAlertPolicyConnector opens a monitoring alert policy client
func MonitoringAlertPolicyConnector(opts ...option.ClientOption) discovery.Connector[MonitoringAlertPolicyClient] {
	return func(ctx context.Context) (MonitoringAlertPolicyClient, error) {
		client, err := monitoring.NewAlertPolicyClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating monitoring alert policy client: %w", err)
		}

		return NewMonitoringAlertPolicyClient(client), nil
	}
}

// MonitoringServiceConnector opens a service monitoring client
func MonitoringServiceConnector(opts ...option.ClientOption) discovery.Connector[MonitoringServiceClient] {
	return func(ctx context.Context) (MonitoringServiceClient, error) {
		client, err := monitoring.NewServiceMonitoringClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating service monitoring client: %w", err)
		}

		return NewMonitoringServiceClient(client), nil
	}
}
