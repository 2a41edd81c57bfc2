package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

// BigQuery configures the audit sink. The sink is disabled when no project is
// given.
type BigQuery struct {
	projectID                 types.GoogleProjectID
	datasetID                 types.BQDatasetID
	tableID                   types.BQTableID
	impersonateServiceAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for audit records",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("NEWGIT_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID for audit records",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("NEWGIT_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID for audit records",
			Category:    "BigQuery",
			Value:       "provisions",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("NEWGIT_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery access",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAccount,
			Sources:     cli.EnvVars("NEWGIT_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

// NewClient returns nil without error when the sink is disabled.
func (x BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.projectID == "" {
		return nil, nil
	}
	if x.datasetID == "" {
		return nil, goerr.New("--bigquery-dataset-id is required with --bigquery-project-id",
			goerr.V("projectID", x.projectID))
	}

	var options []option.ClientOption
	if x.impersonateServiceAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAccount,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonation",
				goerr.V("serviceAccount", x.impersonateServiceAccount))
		}
		options = append(options, option.WithTokenSource(ts))
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Any("ImpersonateServiceAccount", x.impersonateServiceAccount),
	)
}
