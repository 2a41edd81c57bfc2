package usecase_test

import (
	"context"
	"sync"

	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/mock"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
)

const testOrg = "acme"

// fakeGitHub keeps repositories and files in memory behind a GitHubMock so
// tests can assert both on state and on call counts.
type fakeGitHub struct {
	mutex sync.Mutex
	teams []*model.Team
	users []*model.User
	repos map[string]*fakeRepo

	protections []*interfaces.BranchProtectionInput
	permissions []string
}

type fakeRepo struct {
	handle  model.RepositoryHandle
	private bool
	files   map[string]string
	shas    map[string]string
}

func newFakeGitHub() (*fakeGitHub, *mock.GitHubMock) {
	fake := &fakeGitHub{
		teams: []*model.Team{{Name: "Security", Slug: "security"}},
		users: []*model.User{{Login: "alice"}},
		repos: map[string]*fakeRepo{},
	}

	gh := &mock.GitHubMock{
		OrganizationFunc: func() string { return testOrg },
		VerifyOrganizationFunc: func(ctx context.Context) error {
			return nil
		},
		ListTeamsFunc: func(ctx context.Context) ([]*model.Team, error) {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			return append([]*model.Team{}, fake.teams...), nil
		},
		ListMembersFunc: func(ctx context.Context) ([]*model.User, error) {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			return append([]*model.User{}, fake.users...), nil
		},
		GetRepositoryFunc: func(ctx context.Context, name string) (*model.RepositoryHandle, error) {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			if repo, ok := fake.repos[name]; ok {
				h := repo.handle
				return &h, nil
			}
			return nil, nil
		},
		CreateRepositoryFunc: func(ctx context.Context, input *interfaces.CreateRepositoryInput) (*model.RepositoryHandle, error) {
			repo := fake.create(input.Name, input.Private)
			if input.AutoInit {
				repo.files["README.md"] = "# " + input.Name
			}
			h := repo.handle
			return &h, nil
		},
		CreateRepositoryFromTemplateFunc: func(ctx context.Context, input *interfaces.CreateRepositoryFromTemplateInput) (*model.RepositoryHandle, error) {
			repo := fake.create(input.Name, input.Private)
			repo.files["README.md"] = "generated from " + input.Template.String()
			h := repo.handle
			return &h, nil
		},
		UpdateVisibilityFunc: func(ctx context.Context, name string, visibility types.Visibility) error {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			fake.repos[name].handle.Visibility = visibility
			return nil
		},
		GetFileFunc: func(ctx context.Context, name, path string) (*interfaces.FileContent, error) {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			repo := fake.repos[name]
			content, ok := repo.files[path]
			if !ok {
				return nil, nil
			}
			return &interfaces.FileContent{Path: path, SHA: repo.shas[path], Content: content}, nil
		},
		PutFileFunc: func(ctx context.Context, input *interfaces.PutFileInput) error {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			repo := fake.repos[input.Repo]
			repo.files[input.Path] = input.Content
			repo.shas[input.Path] = input.Path + "-sha-" + string(rune('a'+len(repo.shas)))
			return nil
		},
		AddTeamRepoPermissionFunc: func(ctx context.Context, teamSlug, repo, permission string) error {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			fake.permissions = append(fake.permissions, teamSlug+":"+repo+":"+permission)
			return nil
		},
		UpdateBranchProtectionFunc: func(ctx context.Context, input *interfaces.BranchProtectionInput) error {
			fake.mutex.Lock()
			defer fake.mutex.Unlock()
			fake.protections = append(fake.protections, input)
			return nil
		},
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "test-token", nil
		},
	}

	return fake, gh
}

func (x *fakeGitHub) create(name string, private bool) *fakeRepo {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	vis := types.VisibilityPublic
	if private {
		vis = types.VisibilityPrivate
	}
	repo := &fakeRepo{
		handle: model.RepositoryHandle{
			Owner:         testOrg,
			Name:          name,
			HTMLURL:       "https://github.com/" + testOrg + "/" + name,
			CloneURL:      "https://github.com/" + testOrg + "/" + name + ".git",
			DefaultBranch: "main",
			Visibility:    vis,
		},
		private: private,
		files:   map[string]string{},
		shas:    map[string]string{},
	}
	x.repos[name] = repo
	return repo
}

func (x *fakeGitHub) addRepo(name string) {
	x.create(name, true)
}

func (x *fakeGitHub) file(repo, path string) string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.repos[repo].files[path]
}

// mutations counts calls that change state on the provider.
func mutations(gh *mock.GitHubMock) int {
	return len(gh.CreateRepositoryCalls()) +
		len(gh.CreateRepositoryFromTemplateCalls()) +
		len(gh.UpdateVisibilityCalls()) +
		len(gh.PutFileCalls()) +
		len(gh.AddTeamRepoPermissionCalls()) +
		len(gh.UpdateBranchProtectionCalls())
}
