package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/newgit/pkg/cli/config"
	"github.com/secmon-lab/newgit/pkg/infra"
	"github.com/secmon-lab/newgit/pkg/infra/gitremote"
	"github.com/secmon-lab/newgit/pkg/usecase"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// provisioner groups the configuration every provisioning entry point needs.
type provisioner struct {
	github        config.GitHub
	azureAD       config.AzureAD
	authorization config.Authorization
	catalog       config.Catalog
	bigQuery      config.BigQuery
	workflow      config.Workflow
	sentry        config.Sentry
}

func (x *provisioner) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.azureAD.Flags(),
		x.authorization.Flags(),
		x.catalog.Flags(),
		x.bigQuery.Flags(),
		x.workflow.Flags(),
		x.sentry.Flags(),
	)
}

func (x *provisioner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", x.github),
		slog.Any("AzureAD", x.azureAD),
		slog.Any("Authorization", x.authorization),
		slog.Any("Catalog", x.catalog),
		slog.Any("BigQuery", x.bigQuery),
		slog.Any("Workflow", x.workflow),
		slog.Any("Sentry", &x.sentry),
	)
}

func (x *provisioner) newUseCase(ctx context.Context) (*usecase.UseCase, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	gh, err := x.github.New()
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(gh),
		infra.WithGitRemote(gitremote.New(gh.AccessToken)),
	}

	if idp, err := x.azureAD.New(); err != nil {
		return nil, err
	} else if idp != nil {
		infraOptions = append(infraOptions, infra.WithIdentityProvider(idp))
	} else {
		logging.From(ctx).Warn("Azure AD is not configured, only trusted domains are authorized")
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	templates, err := x.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	options := slice.Flatten(
		x.authorization.Options(),
		x.workflow.Options(),
		[]usecase.Option{usecase.WithTemplates(templates...)},
	)

	return usecase.New(infra.New(infraOptions...), options...), nil
}
