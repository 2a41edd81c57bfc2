package bq

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Client struct {
	bqClient *bigquery.Client
	dataset  types.BQDatasetID
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// Insert implements interfaces.BigQuery. data must be a struct or a pointer
// to a struct whose fields match schema.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	saver := &bigquery.StructSaver{
		Schema:   schema,
		InsertID: uuid.NewString(),
		Struct:   data,
	}

	if err := x.table().Inserter().Put(ctx, saver); err != nil {
		return goerr.Wrap(err, "failed to insert row", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}
