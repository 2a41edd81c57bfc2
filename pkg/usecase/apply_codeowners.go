package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

const ownerTeamPermission = "admin"

// ApplyCodeowners appends an entry for owner to the repository's CODEOWNERS
// file, creating it when absent. A team owner is also granted admin on the
// repository.
func (x *UseCase) ApplyCodeowners(ctx context.Context, repo *model.RepositoryHandle, ownerName string) error {
	gh := x.clients.GitHub()
	if gh == nil || x.directory == nil {
		return goerr.New("GitHub client is not configured")
	}

	owner, err := x.directory.Resolve(ctx, ownerName)
	if err != nil {
		return err
	}

	current, err := callWithTimeout(ctx, x.callTimeout, func(ctx context.Context) (*interfaces.FileContent, error) {
		return gh.GetFile(ctx, repo.Name, model.CodeownersPath)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to read CODEOWNERS", goerr.V("repo", repo.FullName()))
	}

	input := &interfaces.PutFileInput{
		Repo:    repo.Name,
		Path:    model.CodeownersPath,
		Branch:  repo.DefaultBranch,
		Message: model.CodeownersCommitMessage,
	}
	var existing string
	if current != nil {
		existing = current.Content
		input.SHA = current.SHA
	}
	handle := owner.Handle(gh.Organization())
	input.Content = model.AppendCodeowners(existing, handle)

	if err := execWithTimeout(ctx, x.callTimeout, func(ctx context.Context) error {
		return gh.PutFile(ctx, input)
	}); err != nil {
		return goerr.Wrap(err, "failed to write CODEOWNERS", goerr.V("repo", repo.FullName()), goerr.V("owner", handle))
	}

	if owner.IsTeam() {
		if err := execWithTimeout(ctx, x.callTimeout, func(ctx context.Context) error {
			return gh.AddTeamRepoPermission(ctx, owner.Team.Slug, repo.Name, ownerTeamPermission)
		}); err != nil {
			return goerr.Wrap(err, "failed to grant team permission",
				goerr.V("repo", repo.FullName()),
				goerr.V("team", owner.Team.Slug),
			)
		}
	}

	logging.From(ctx).Info("CODEOWNERS applied",
		"repo", repo.FullName(),
		"owner", handle,
		"updated", current != nil,
	)
	return nil
}
