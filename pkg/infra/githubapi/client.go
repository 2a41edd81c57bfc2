package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const perPage = 100

type Client struct {
	org    types.GitHubOrg
	client *github.Client
	token  func(ctx context.Context) (string, error)
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL points the client at GitHub Enterprise Server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func buildConfig(options []Option) *config {
	cfg := &config{transport: http.DefaultTransport}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// NewWithToken authenticates with a personal access token.
func NewWithToken(org types.GitHubOrg, token types.GitHubToken, options ...Option) (*Client, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	cfg := buildConfig(options)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: cfg.transport},
	}

	return newClient(org, httpClient, cfg, func(ctx context.Context) (string, error) {
		return string(token), nil
	})
}

// NewWithApp authenticates as a GitHub App installation.
func NewWithApp(org types.GitHubOrg, appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg := buildConfig(options)
	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github app transport")
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	return newClient(org, &http.Client{Transport: itr}, cfg, itr.Token)
}

func newClient(org types.GitHubOrg, httpClient *http.Client, cfg *config, token func(context.Context) (string, error)) (*Client, error) {
	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{
		org:    org,
		client: client,
		token:  token,
	}, nil
}

func (x *Client) Organization() string {
	return x.org.String()
}

func (x *Client) AccessToken(ctx context.Context) (string, error) {
	token, err := x.token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get GitHub access token")
	}
	return token, nil
}

func (x *Client) VerifyOrganization(ctx context.Context) error {
	org, _, err := x.client.Organizations.Get(ctx, x.Organization())
	if err != nil {
		return goerr.Wrap(err, "failed to get organization", goerr.V("org", x.org))
	}

	logging.From(ctx).Info("GitHub organization verified",
		slog.String("org", org.GetLogin()),
		slog.Int64("id", org.GetID()),
	)
	return nil
}

func (x *Client) ListTeams(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	opts := &github.ListOptions{PerPage: perPage}

	for {
		result, resp, err := x.client.Teams.ListTeams(ctx, x.Organization(), opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list teams", goerr.V("org", x.org))
		}

		for _, team := range result {
			teams = append(teams, &model.Team{
				Name: team.GetName(),
				Slug: team.GetSlug(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return teams, nil
}

func (x *Client) ListMembers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	opts := &github.ListMembersOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	for {
		result, resp, err := x.client.Organizations.ListMembers(ctx, x.Organization(), opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list members", goerr.V("org", x.org))
		}

		for _, user := range result {
			users = append(users, &model.User{Login: user.GetLogin()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return users, nil
}

func (x *Client) GetRepository(ctx context.Context, name string) (*model.RepositoryHandle, error) {
	repo, resp, err := x.client.Repositories.Get(ctx, x.Organization(), name)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("org", x.org), goerr.V("repo", name))
	}

	return toHandle(repo), nil
}

func (x *Client) CreateRepository(ctx context.Context, input *interfaces.CreateRepositoryInput) (*model.RepositoryHandle, error) {
	req := &github.Repository{
		Name:        github.String(input.Name),
		Description: github.String(input.Description),
		Private:     github.Bool(input.Private),
		AutoInit:    github.Bool(input.AutoInit),
	}

	repo, resp, err := x.client.Repositories.Create(ctx, x.Organization(), req)
	if err != nil {
		if isAlreadyExists(err) {
			return nil, goerr.Wrap(types.ErrAlreadyExists, "repository already exists", goerr.V("repo", input.Name))
		}
		return nil, goerr.Wrap(err, "failed to create repository", goerr.V("org", x.org), goerr.V("repo", input.Name))
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, goerr.New("unexpected status on repository creation", goerr.V("status", resp.StatusCode))
	}

	logging.From(ctx).Info("Created repository",
		slog.String("repo", repo.GetFullName()),
		slog.Bool("private", repo.GetPrivate()),
	)

	return toHandle(repo), nil
}

// CreateRepositoryFromTemplate generates a repository from a template.
// https://docs.github.com/en/rest/repos/repos#create-a-repository-using-a-template
func (x *Client) CreateRepositoryFromTemplate(ctx context.Context, input *interfaces.CreateRepositoryFromTemplateInput) (*model.RepositoryHandle, error) {
	req := &github.TemplateRepoRequest{
		Name:        github.String(input.Name),
		Owner:       github.String(x.Organization()),
		Description: github.String(input.Description),
		Private:     github.Bool(input.Private),
	}

	repo, resp, err := x.client.Repositories.CreateFromTemplate(ctx, input.Template.Owner, input.Template.Repo, req)
	if err != nil {
		if isAlreadyExists(err) {
			return nil, goerr.Wrap(types.ErrAlreadyExists, "repository already exists", goerr.V("repo", input.Name))
		}
		return nil, goerr.Wrap(err, "failed to create repository from template",
			goerr.V("template", input.Template.String()),
			goerr.V("repo", input.Name),
		)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, goerr.New("unexpected status on template generation",
			goerr.V("status", resp.StatusCode),
			goerr.V("template", input.Template.String()),
		)
	}

	logging.From(ctx).Info("Created repository from template",
		slog.String("repo", repo.GetFullName()),
		slog.String("template", input.Template.String()),
	)

	return toHandle(repo), nil
}

func (x *Client) UpdateVisibility(ctx context.Context, repo string, visibility types.Visibility) error {
	req := &github.Repository{Visibility: github.String(visibility.String())}
	if _, _, err := x.client.Repositories.Edit(ctx, x.Organization(), repo, req); err != nil {
		return goerr.Wrap(err, "failed to update visibility",
			goerr.V("repo", repo),
			goerr.V("visibility", visibility),
		)
	}
	return nil
}

func (x *Client) GetFile(ctx context.Context, repo, path string) (*interfaces.FileContent, error) {
	file, _, resp, err := x.client.Repositories.GetContents(ctx, x.Organization(), repo, path, nil)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get file", goerr.V("repo", repo), goerr.V("path", path))
	}
	if file == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "path is not a file", goerr.V("repo", repo), goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content", goerr.V("repo", repo), goerr.V("path", path))
	}

	return &interfaces.FileContent{
		Path:    file.GetPath(),
		SHA:     file.GetSHA(),
		Content: content,
	}, nil
}

func (x *Client) PutFile(ctx context.Context, input *interfaces.PutFileInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: []byte(input.Content),
	}
	if input.Branch != "" {
		opts.Branch = github.String(input.Branch)
	}

	var err error
	if input.SHA == "" {
		_, _, err = x.client.Repositories.CreateFile(ctx, x.Organization(), input.Repo, input.Path, opts)
	} else {
		opts.SHA = github.String(input.SHA)
		_, _, err = x.client.Repositories.UpdateFile(ctx, x.Organization(), input.Repo, input.Path, opts)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write file",
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
			goerr.V("update", input.SHA != ""),
		)
	}

	return nil
}

func (x *Client) AddTeamRepoPermission(ctx context.Context, teamSlug, repo, permission string) error {
	opts := &github.TeamAddTeamRepoOptions{Permission: permission}
	if _, err := x.client.Teams.AddTeamRepoBySlug(ctx, x.Organization(), teamSlug, x.Organization(), repo, opts); err != nil {
		return goerr.Wrap(err, "failed to grant team permission",
			goerr.V("team", teamSlug),
			goerr.V("repo", repo),
			goerr.V("permission", permission),
		)
	}
	return nil
}

func (x *Client) UpdateBranchProtection(ctx context.Context, input *interfaces.BranchProtectionInput) error {
	req := &github.ProtectionRequest{
		RequiredPullRequestReviews: &github.PullRequestReviewsEnforcementRequest{
			RequiredApprovingReviewCount: input.RequiredApprovingReview,
			RequireCodeOwnerReviews:      input.RequireCodeOwnerReview,
		},
	}

	if _, _, err := x.client.Repositories.UpdateBranchProtection(ctx, x.Organization(), input.Repo, input.Branch, req); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
		)
	}
	return nil
}

func toHandle(repo *github.Repository) *model.RepositoryHandle {
	vis := types.Visibility(repo.GetVisibility())
	if vis == "" {
		vis = types.VisibilityPublic
		if repo.GetPrivate() {
			vis = types.VisibilityPrivate
		}
	}

	return &model.RepositoryHandle{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Visibility:    vis,
	}
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

// isAlreadyExists detects the 422 GitHub returns when the name is taken,
// which can happen when two requests race past the existence check.
func isAlreadyExists(err error) bool {
	ghErr, ok := err.(*github.ErrorResponse)
	if !ok || ghErr.Response == nil || ghErr.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	if strings.Contains(ghErr.Message, "already exists") {
		return true
	}
	for _, e := range ghErr.Errors {
		if strings.Contains(e.Message, "already exists") {
			return true
		}
	}
	return false
}
