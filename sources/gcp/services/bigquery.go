package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// BigQuery discovers the datasets of a project
type BigQuery struct {
	connect discovery.Connector[gcpshared.BigQueryDatasetClient]
}

// NewBigQuery creates the BigQuery module
func NewBigQuery(connect discovery.Connector[gcpshared.BigQueryDatasetClient]) *BigQuery {
	return &BigQuery{connect: connect}
}

func (b *BigQuery) Service() string {
	return gcpshared.BigQuery
}

func (b *BigQuery) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	pass := kindPass[*bigquery.DatasetMetadata]{
		kind: gcpshared.BigQueryDataset,
		// FullID is the generated "project:dataset" id
		id: func(ds *bigquery.DatasetMetadata) string { return ds.FullID },
	}

	err := discovery.WithClient(ctx, b.connect, func(client gcpshared.BigQueryDatasetClient) error {
		return pass.run(ctx, s, &datasetMetadataIterator{
			ctx:       ctx,
			client:    client,
			projectID: projectID,
			datasets:  client.List(ctx, projectID),
		})
	})

	s.report(ctx, gcpshared.BigQueryDataset.ResourceType, err)
}

// datasetMetadataIterator resolves each listed dataset to its full metadata
type datasetMetadataIterator struct {
	ctx       context.Context
	client    gcpshared.BigQueryDatasetClient
	projectID string
	datasets  gcpshared.BigQueryDatasetIterator
}

func (d *datasetMetadataIterator) Next() (*bigquery.DatasetMetadata, error) {
	ds, err := d.datasets.Next()
	if err != nil {
		return nil, err
	}

	projectID := ds.ProjectID
	if projectID == "" {
		projectID = d.projectID
	}

	meta, err := d.client.Metadata(d.ctx, projectID, ds.DatasetID)
	if err != nil {
		return nil, fmt.Errorf("error getting metadata for dataset %s: %w", ds.DatasetID, err)
	}

	return meta, nil
}
