package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

// ProtectDefaultBranch requires pull request reviews on the default branch.
// minReviewers below 1 is raised to model.DefaultReviewerCount.
func (x *UseCase) ProtectDefaultBranch(ctx context.Context, repo *model.RepositoryHandle, requireCodeOwnerReview bool, minReviewers int) error {
	gh := x.clients.GitHub()
	if gh == nil {
		return goerr.New("GitHub client is not configured")
	}

	if minReviewers < 1 {
		minReviewers = model.DefaultReviewerCount
	}

	input := &interfaces.BranchProtectionInput{
		Repo:                    repo.Name,
		Branch:                  repo.DefaultBranch,
		RequiredApprovingReview: minReviewers,
		RequireCodeOwnerReview:  requireCodeOwnerReview,
	}
	if err := execWithTimeout(ctx, x.callTimeout, func(ctx context.Context) error {
		return gh.UpdateBranchProtection(ctx, input)
	}); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", repo.DefaultBranch),
		)
	}

	logging.From(ctx).Info("default branch protected",
		"repo", repo.FullName(),
		"branch", repo.DefaultBranch,
		"reviewers", minReviewers,
		"code_owner_review", requireCodeOwnerReview,
	)
	return nil
}
