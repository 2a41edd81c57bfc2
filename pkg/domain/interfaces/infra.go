package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub IdentityProvider GitRemote BigQuery

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GitHub is the repository host, bound to one organization.
type GitHub interface {
	Organization() string
	VerifyOrganization(ctx context.Context) error

	ListTeams(ctx context.Context) ([]*model.Team, error)
	ListMembers(ctx context.Context) ([]*model.User, error)

	// GetRepository returns nil without error when the repository does not exist.
	GetRepository(ctx context.Context, name string) (*model.RepositoryHandle, error)
	CreateRepository(ctx context.Context, input *CreateRepositoryInput) (*model.RepositoryHandle, error)
	CreateRepositoryFromTemplate(ctx context.Context, input *CreateRepositoryFromTemplateInput) (*model.RepositoryHandle, error)
	UpdateVisibility(ctx context.Context, repo string, visibility types.Visibility) error

	// GetFile returns nil without error when the file does not exist.
	GetFile(ctx context.Context, repo, path string) (*FileContent, error)
	PutFile(ctx context.Context, input *PutFileInput) error

	AddTeamRepoPermission(ctx context.Context, teamSlug, repo, permission string) error
	UpdateBranchProtection(ctx context.Context, input *BranchProtectionInput) error

	// AccessToken returns a token usable for git over HTTPS.
	AccessToken(ctx context.Context) (string, error)
}

type CreateRepositoryInput struct {
	Name        string
	Description string
	Private     bool
	AutoInit    bool
}

type CreateRepositoryFromTemplateInput struct {
	Template    model.TemplateRef
	Name        string
	Description string
	Private     bool
}

type FileContent struct {
	Path    string
	SHA     string
	Content string
}

type PutFileInput struct {
	Repo    string
	Path    string
	Branch  string
	Message string
	Content string
	// SHA of the blob being replaced; empty creates the file.
	SHA string
}

type BranchProtectionInput struct {
	Repo                    string
	Branch                  string
	RequiredApprovingReview int
	RequireCodeOwnerReview  bool
}

// IdentityProvider checks transitive group membership. Tokens are not cached;
// callers acquire one per check.
type IdentityProvider interface {
	AcquireToken(ctx context.Context) (types.AccessToken, error)
	TransitiveMemberOf(ctx context.Context, token types.AccessToken, email string) ([]types.AzureGroupID, error)
}

// GitRemote inspects a remote over the git protocol.
type GitRemote interface {
	HasBranch(ctx context.Context, cloneURL, branch string) (bool, error)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
