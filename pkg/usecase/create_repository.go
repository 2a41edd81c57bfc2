package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

// CreateRepository validates req and creates the repository, blank or from a
// template. Visibility and readiness problems are reported as warnings on the
// result since the repository is usable anyway.
func (x *UseCase) CreateRepository(ctx context.Context, req *model.RepositoryRequest) (*model.ProvisionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, model.WithKind(model.ErrRepoCreate, goerr.New("GitHub client is not configured"))
	}

	var template *model.TemplateRef
	if !req.IsBlank() {
		ref, err := x.lookupTemplate(gh.Organization(), req.Template)
		if err != nil {
			return nil, err
		}
		template = ref
	}

	existing, err := callWithTimeout(ctx, x.callTimeout, func(ctx context.Context) (*model.RepositoryHandle, error) {
		return gh.GetRepository(ctx, req.Name)
	})
	if err != nil {
		return nil, model.WithKind(model.ErrRepoCreate,
			goerr.Wrap(err, "failed to check repository existence", goerr.V("name", req.Name)))
	}
	if existing != nil {
		return nil, model.WithKind(model.ErrRepoExists,
			goerr.New("repository already exists", goerr.V("name", req.Name), goerr.V("url", existing.HTMLURL)))
	}

	repo, err := callWithTimeout(ctx, x.callTimeout, func(ctx context.Context) (*model.RepositoryHandle, error) {
		if template == nil {
			return gh.CreateRepository(ctx, &interfaces.CreateRepositoryInput{
				Name:        req.Name,
				Description: req.Description,
				Private:     req.Visibility.Private(),
				AutoInit:    true,
			})
		}
		return gh.CreateRepositoryFromTemplate(ctx, &interfaces.CreateRepositoryFromTemplateInput{
			Template:    *template,
			Name:        req.Name,
			Description: req.Description,
			Private:     req.Visibility.Private(),
		})
	})
	if err != nil {
		if errors.Is(err, types.ErrAlreadyExists) {
			return nil, model.WithKind(model.ErrRepoExists, goerr.Wrap(err, "repository created concurrently", goerr.V("name", req.Name)))
		}
		return nil, model.WithKind(model.ErrRepoCreate, goerr.Wrap(err, "failed to create repository",
			goerr.V("name", req.Name),
			goerr.V("template", req.Template),
		))
	}

	logging.From(ctx).Info("repository created",
		"repo", repo.FullName(),
		"url", repo.HTMLURL,
		"template", req.Template,
	)

	result := &model.ProvisionResult{Repository: *repo}
	result.Repository.Visibility = req.Visibility.Nearest()
	if result.Repository.DefaultBranch == "" {
		result.Repository.DefaultBranch = "main"
	}

	if !req.Visibility.NativelySupported() {
		err := execWithTimeout(ctx, x.callTimeout, func(ctx context.Context) error {
			return gh.UpdateVisibility(ctx, repo.Name, req.Visibility)
		})
		if err != nil {
			logging.From(ctx).Warn("failed to update visibility",
				"repo", repo.FullName(),
				"visibility", req.Visibility,
				"error", err,
			)
			result.Warn(model.StepVisibility, "Repository was created as "+result.Repository.Visibility.String()+
				", could not set visibility to "+req.Visibility.String())
		} else {
			result.Repository.Visibility = req.Visibility
		}
	}

	x.waitForDefaultBranch(ctx, result)

	return result, nil
}

// lookupTemplate resolves the template reference against the organization and
// checks it against the catalog when one is configured.
func (x *UseCase) lookupTemplate(org, template string) (*model.TemplateRef, error) {
	ref, err := model.ParseTemplateRef(template, org)
	if err != nil {
		return nil, err
	}

	if len(x.templates) == 0 {
		return &ref, nil
	}

	for _, t := range x.templates {
		known, err := model.ParseTemplateRef(t, org)
		if err != nil {
			continue
		}
		if strings.EqualFold(known.String(), ref.String()) {
			return &known, nil
		}
	}

	return nil, model.NewValidationError("Unknown template "+template, goerr.V("template", template))
}

// waitForDefaultBranch polls until the default branch has a head. Template
// generation on GitHub finishes after the create call returns.
func (x *UseCase) waitForDefaultBranch(ctx context.Context, result *model.ProvisionResult) {
	remote := x.clients.GitRemote()
	repo := &result.Repository
	if remote == nil || repo.CloneURL == "" || x.readinessPolls <= 0 {
		return
	}

	var lastErr error
	for i := 0; i < x.readinessPolls; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				result.Warn(model.StepReadiness, "Default branch readiness was not confirmed")
				return
			case <-time.After(x.readinessInterval):
			}
		}

		ready, err := callWithTimeout(ctx, x.callTimeout, func(ctx context.Context) (bool, error) {
			return remote.HasBranch(ctx, repo.CloneURL, repo.DefaultBranch)
		})
		if err != nil {
			lastErr = err
			continue
		}
		if ready {
			return
		}
	}

	logging.From(ctx).Warn("default branch is not ready",
		"repo", repo.FullName(),
		"branch", repo.DefaultBranch,
		"polls", x.readinessPolls,
		"error", lastErr,
	)
	result.Warn(model.StepReadiness, "Default branch "+repo.DefaultBranch+" is not ready yet")
}
