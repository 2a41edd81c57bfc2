package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/utils/errutil"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

// Provision implements interfaces.UseCase. Creation and CODEOWNERS are hard
// steps; branch protection only adds a warning when it fails. Nothing is
// rolled back: a repository created before a hard failure stays in place and
// is named in the log and the audit record.
func (x *UseCase) Provision(ctx context.Context, req *model.RepositoryRequest) (*model.ProvisionResult, error) {
	result, err := x.provision(ctx, req)
	x.audit(ctx, req, result, err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (x *UseCase) provision(ctx context.Context, req *model.RepositoryRequest) (*model.ProvisionResult, error) {
	result, err := x.CreateRepository(ctx, req)
	if err != nil {
		return nil, err
	}
	repo := &result.Repository

	if err := x.ApplyCodeowners(ctx, repo, req.Owner); err != nil {
		errutil.HandleError(ctx, "repository left in place after CODEOWNERS failure",
			goerr.Wrap(err, "CODEOWNERS failed", goerr.V("url", repo.HTMLURL), goerr.V("owner", req.Owner)))
		return result, err
	}

	if err := x.ProtectDefaultBranch(ctx, repo, x.requireCodeOwnerReview, x.reviewerCount); err != nil {
		logging.From(ctx).Warn("failed to protect default branch", "repo", repo.FullName(), "error", err)
		result.Warn(model.StepBranchProtection, "Could not protect branch "+repo.DefaultBranch+", please set it up manually")
	}

	logging.From(ctx).Info("repository provisioned",
		"repo", repo.FullName(),
		"url", repo.HTMLURL,
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// SearchOwners implements interfaces.UseCase.
func (x *UseCase) SearchOwners(ctx context.Context, prefix string) []string {
	if x.directory == nil {
		return nil
	}
	return x.directory.Search(ctx, prefix)
}

// Warmup checks access to the organization and loads the directory so the
// first request does not pay for it.
func (x *UseCase) Warmup(ctx context.Context) error {
	gh := x.clients.GitHub()
	if gh == nil {
		return goerr.New("GitHub client is not configured")
	}

	if err := execWithTimeout(ctx, x.callTimeout, gh.VerifyOrganization); err != nil {
		return goerr.Wrap(err, "failed to access organization", goerr.V("org", gh.Organization()))
	}

	if _, err := x.directory.Snapshot(ctx); err != nil {
		return goerr.Wrap(err, "failed to load directory", goerr.V("org", gh.Organization()))
	}

	return nil
}

func (x *UseCase) audit(ctx context.Context, req *model.RepositoryRequest, result *model.ProvisionResult, provisionErr error) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	reqID, _ := logging.CtxRequestID(ctx)
	record := &model.ProvisionRecord{
		ID:          string(reqID),
		Timestamp:   logging.CtxTime(ctx).UTC(),
		RequestedBy: req.RequestedBy,
		Name:        req.Name,
		Template:    req.Template,
		Visibility:  req.Visibility.String(),
		Owner:       req.Owner,
		Outcome:     string(model.OutcomeSuccess),
	}
	if result != nil {
		record.URL = result.Repository.HTMLURL
		record.Warnings = result.Warnings
		if len(result.Warnings) > 0 {
			record.Outcome = string(model.OutcomePartial)
		}
	}
	if provisionErr != nil {
		record.Outcome = string(model.OutcomeFailure)
		record.ErrorKind = string(model.Classify(provisionErr))
		record.ErrorMessage = provisionErr.Error()
	}

	err := execWithTimeout(ctx, x.callTimeout, func(ctx context.Context) error {
		schema, err := createOrUpdateAuditTable(ctx, bq, record)
		if err != nil {
			return err
		}
		return bq.Insert(ctx, schema, record)
	})
	if err != nil {
		errutil.HandleError(ctx, "failed to write audit record", goerr.Wrap(err, "audit failed", goerr.V("id", record.ID)))
	}
}

func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery, record *model.ProvisionRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	merged, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: merged,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table")
	}

	return merged, nil
}
