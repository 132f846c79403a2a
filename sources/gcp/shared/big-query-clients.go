//go:generate mockgen -destination=./mocks/mock_big_query_dataset_client.go -package=mocks -source=big-query-clients.go
package shared

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

type BigQueryDatasetIterator = Iterator[*bigquery.Dataset]

// BigQueryDatasetClient lists the datasets of a project. The listing only
// returns dataset references, the full metadata is fetched per dataset
type BigQueryDatasetClient interface {
	List(ctx context.Context, projectID string) BigQueryDatasetIterator
	Metadata(ctx context.Context, projectID, datasetID string) (*bigquery.DatasetMetadata, error)
	Close() error
}

type bigQueryDatasetClient struct {
	client *bigquery.Client
}

func (b bigQueryDatasetClient) List(ctx context.Context, projectID string) BigQueryDatasetIterator {
	it := b.client.Datasets(ctx)
	it.ProjectID = projectID
	// Hidden datasets are part of the inventory too
	it.ListHidden = true

	return it
}

func (b bigQueryDatasetClient) Metadata(ctx context.Context, projectID, datasetID string) (*bigquery.DatasetMetadata, error) {
	ds := b.client.DatasetInProject(projectID, datasetID)

	if ds == nil {
		return nil, fmt.Errorf("dataset %s not found in project %s", datasetID, projectID)
	}

	return ds.Metadata(ctx)
}

func (b bigQueryDatasetClient) Close() error {
	return b.client.Close()
}

// NewBigQueryDatasetClient creates a new BigQueryDatasetClient
func NewBigQueryDatasetClient(client *bigquery.Client) BigQueryDatasetClient {
	return &bigQueryDatasetClient{
		client: client,
	}
}

// BigQueryDatasetConnector opens a BigQuery client billed to the given project
func BigQueryDatasetConnector(projectID string, opts ...option.ClientOption) discovery.Connector[BigQueryDatasetClient] {
	return func(ctx context.Context) (BigQueryDatasetClient, error) {
		client, err := bigquery.NewClient(ctx, projectID, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating BigQuery client: %w", err)
		}

		return NewBigQueryDatasetClient(client), nil
	}
}
