package githubapi_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/infra/githubapi"
	"github.com/secmon-lab/newgit/pkg/utils/testutil"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *githubapi.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := githubapi.NewWithToken("acme", "test-token", githubapi.WithBaseURL(srv.URL))
	gt.NoError(t, err)
	return client
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	raw := gt.R1(io.ReadAll(r.Body)).NoError(t)
	gt.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestNew(t *testing.T) {
	t.Run("token client with valid inputs", func(t *testing.T) {
		client, err := githubapi.NewWithToken("acme", "test-token")
		gt.NoError(t, err)
		gt.V(t, client.Organization()).Equal("acme")

		token, err := client.AccessToken(context.Background())
		gt.NoError(t, err)
		gt.V(t, token).Equal("test-token")
	})

	t.Run("token client without organization fails", func(t *testing.T) {
		client, err := githubapi.NewWithToken("", "test-token")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("token client without token fails", func(t *testing.T) {
		client, err := githubapi.NewWithToken("acme", "")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("app client with zero app ID fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp("acme", 0, 1, "pem")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("app client with zero install ID fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp("acme", 1, 0, "pem")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("app client with invalid key fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp("acme", 1, 2, "invalid-key")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})
}

func TestAuthorizationHeader(t *testing.T) {
	var header string
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme", func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		w.Write([]byte(`{"login":"acme","id":1}`))
	})

	client := newTestClient(t, mux)
	gt.NoError(t, client.VerifyOrganization(context.Background()))
	gt.V(t, header).Equal("Bearer test-token")
}

func TestListTeams(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/teams", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", `<`+srvURL+`/orgs/acme/teams?page=2>; rel="next"`)
			w.Write([]byte(`[{"name":"Security","slug":"security"}]`))
			return
		}
		w.Write([]byte(`[{"name":"Platform Eng","slug":"platform-eng"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL

	client := gt.R1(githubapi.NewWithToken("acme", "test-token", githubapi.WithBaseURL(srv.URL))).NoError(t)

	teams := gt.R1(client.ListTeams(context.Background())).NoError(t)
	gt.V(t, len(teams)).Equal(2)
	gt.V(t, *teams[0]).Equal(model.Team{Name: "Security", Slug: "security"})
	gt.V(t, *teams[1]).Equal(model.Team{Name: "Platform Eng", Slug: "platform-eng"})
}

func TestListMembers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/members", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("per_page")).Equal("100")
		w.Write([]byte(`[{"login":"alice"},{"login":"bob"}]`))
	})

	client := newTestClient(t, mux)
	users := gt.R1(client.ListMembers(context.Background())).NoError(t)
	gt.V(t, len(users)).Equal(2)
	gt.V(t, users[0].Login).Equal("alice")
	gt.V(t, users[1].Login).Equal("bob")
}

func TestGetRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/exists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"exists","owner":{"login":"acme"},"html_url":"https://github.com/acme/exists","default_branch":"main","private":true,"visibility":"internal"}`))
	})
	mux.HandleFunc("/repos/acme/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})
	mux.HandleFunc("/repos/acme/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Server Error"}`))
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("existing repository", func(t *testing.T) {
		repo := gt.R1(client.GetRepository(ctx, "exists")).NoError(t)
		gt.V(t, repo.Name).Equal("exists")
		gt.V(t, repo.FullName()).Equal("acme/exists")
		gt.V(t, repo.DefaultBranch).Equal("main")
		gt.V(t, repo.Visibility).Equal(types.VisibilityInternal)
	})

	t.Run("missing repository returns nil", func(t *testing.T) {
		repo, err := client.GetRepository(ctx, "missing")
		gt.NoError(t, err)
		gt.V(t, repo).Equal(nil)
	})

	t.Run("server error is not treated as missing", func(t *testing.T) {
		repo, err := client.GetRepository(ctx, "broken")
		gt.Error(t, err)
		gt.V(t, repo).Equal(nil)
	})
}

func TestCreateRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		body := decodeBody(t, r)
		gt.V(t, body["name"]).Equal("svc-foo")
		gt.V(t, body["private"]).Equal(true)
		gt.V(t, body["auto_init"]).Equal(true)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"name":"svc-foo","full_name":"acme/svc-foo","owner":{"login":"acme"},"html_url":"https://github.com/acme/svc-foo","clone_url":"https://github.com/acme/svc-foo.git","default_branch":"main","private":true}`))
	})

	client := newTestClient(t, mux)
	repo := gt.R1(client.CreateRepository(context.Background(), &interfaces.CreateRepositoryInput{
		Name:     "svc-foo",
		Private:  true,
		AutoInit: true,
	})).NoError(t)

	gt.V(t, repo.HTMLURL).Equal("https://github.com/acme/svc-foo")
	gt.V(t, repo.CloneURL).Equal("https://github.com/acme/svc-foo.git")
	gt.V(t, repo.Visibility).Equal(types.VisibilityPrivate)
}

func TestCreateRepositoryFromTemplate(t *testing.T) {
	t.Run("generates repository in organization", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/templates/go-service/generate", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			gt.V(t, body["name"]).Equal("svc-bar")
			gt.V(t, body["owner"]).Equal("acme")
			gt.V(t, body["private"]).Equal(false)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"name":"svc-bar","owner":{"login":"acme"},"html_url":"https://github.com/acme/svc-bar","default_branch":"main"}`))
		})

		client := newTestClient(t, mux)
		repo := gt.R1(client.CreateRepositoryFromTemplate(context.Background(), &interfaces.CreateRepositoryFromTemplateInput{
			Template: model.TemplateRef{Owner: "templates", Repo: "go-service"},
			Name:     "svc-bar",
		})).NoError(t)
		gt.V(t, repo.Name).Equal("svc-bar")
		gt.V(t, repo.Visibility).Equal(types.VisibilityPublic)
	})

	t.Run("name collision maps to already exists", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/templates/go-service/generate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"Validation Failed","errors":[{"resource":"Repository","code":"custom","field":"name","message":"name already exists on this account"}]}`))
		})

		client := newTestClient(t, mux)
		_, err := client.CreateRepositoryFromTemplate(context.Background(), &interfaces.CreateRepositoryFromTemplateInput{
			Template: model.TemplateRef{Owner: "templates", Repo: "go-service"},
			Name:     "svc-bar",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAlreadyExists))
	})

	t.Run("unknown template fails", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/templates/nope/generate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		})

		client := newTestClient(t, mux)
		_, err := client.CreateRepositoryFromTemplate(context.Background(), &interfaces.CreateRepositoryFromTemplateInput{
			Template: model.TemplateRef{Owner: "templates", Repo: "nope"},
			Name:     "svc-bar",
		})
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrAlreadyExists))
	})
}

func TestUpdateVisibility(t *testing.T) {
	var called bool
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/svc-foo", func(w http.ResponseWriter, r *http.Request) {
		called = true
		gt.V(t, r.Method).Equal(http.MethodPatch)
		body := decodeBody(t, r)
		gt.V(t, body["visibility"]).Equal("internal")
		w.Write([]byte(`{"name":"svc-foo","visibility":"internal"}`))
	})

	client := newTestClient(t, mux)
	gt.NoError(t, client.UpdateVisibility(context.Background(), "svc-foo", types.VisibilityInternal))
	gt.True(t, called)
}

func TestGetFile(t *testing.T) {
	content := "# added by newgit\n* @acme/security"
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/with-file/contents/CODEOWNERS", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"type":     "file",
			"encoding": "base64",
			"path":     "CODEOWNERS",
			"sha":      "abc123",
			"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		}
		gt.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/repos/acme/without-file/contents/CODEOWNERS", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("decodes existing file", func(t *testing.T) {
		file := gt.R1(client.GetFile(ctx, "with-file", "CODEOWNERS")).NoError(t)
		gt.V(t, file.SHA).Equal("abc123")
		gt.V(t, file.Content).Equal(content)
	})

	t.Run("missing file returns nil", func(t *testing.T) {
		file, err := client.GetFile(ctx, "without-file", "CODEOWNERS")
		gt.NoError(t, err)
		gt.V(t, file).Equal(nil)
	})
}

func TestPutFile(t *testing.T) {
	t.Run("creates file without sha", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/svc-foo/contents/CODEOWNERS", func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPut)
			body := decodeBody(t, r)
			gt.V(t, body["message"]).Equal("CODEOWNERS by newgit")
			_, hasSHA := body["sha"]
			gt.False(t, hasSHA)

			raw := gt.R1(base64.StdEncoding.DecodeString(body["content"].(string))).NoError(t)
			gt.V(t, string(raw)).Equal("* @alice")

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"content":{"path":"CODEOWNERS"}}`))
		})

		client := newTestClient(t, mux)
		gt.NoError(t, client.PutFile(context.Background(), &interfaces.PutFileInput{
			Repo:    "svc-foo",
			Path:    "CODEOWNERS",
			Message: "CODEOWNERS by newgit",
			Content: "* @alice",
		}))
	})

	t.Run("updates file with sha", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/svc-foo/contents/CODEOWNERS", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			gt.V(t, body["sha"]).Equal("abc123")
			gt.V(t, body["branch"]).Equal("main")
			w.Write([]byte(`{"content":{"path":"CODEOWNERS"}}`))
		})

		client := newTestClient(t, mux)
		gt.NoError(t, client.PutFile(context.Background(), &interfaces.PutFileInput{
			Repo:    "svc-foo",
			Path:    "CODEOWNERS",
			Branch:  "main",
			Message: "CODEOWNERS by newgit",
			Content: "* @alice",
			SHA:     "abc123",
		}))
	})
}

func TestAddTeamRepoPermission(t *testing.T) {
	var called bool
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/teams/security/repos/acme/svc-foo", func(w http.ResponseWriter, r *http.Request) {
		called = true
		gt.V(t, r.Method).Equal(http.MethodPut)
		body := decodeBody(t, r)
		gt.V(t, body["permission"]).Equal("admin")
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux)
	gt.NoError(t, client.AddTeamRepoPermission(context.Background(), "security", "svc-foo", "admin"))
	gt.True(t, called)
}

func TestUpdateBranchProtection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/svc-foo/branches/main/protection", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPut)
		body := decodeBody(t, r)
		reviews := body["required_pull_request_reviews"].(map[string]any)
		gt.V(t, reviews["required_approving_review_count"]).Equal(float64(1))
		gt.V(t, reviews["require_code_owner_reviews"]).Equal(true)
		w.Write([]byte(`{"required_pull_request_reviews":{"required_approving_review_count":1,"require_code_owner_reviews":true}}`))
	})

	client := newTestClient(t, mux)
	gt.NoError(t, client.UpdateBranchProtection(context.Background(), &interfaces.BranchProtectionInput{
		Repo:                    "svc-foo",
		Branch:                  "main",
		RequiredApprovingReview: 1,
		RequireCodeOwnerReview:  true,
	}))
}

func TestListTeams_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	org := testutil.GetEnvOrSkip(t, "TEST_GITHUB_ORG")

	client := gt.R1(githubapi.NewWithToken(types.GitHubOrg(org), types.GitHubToken(token))).NoError(t)
	ctx := context.Background()

	gt.NoError(t, client.VerifyOrganization(ctx))
	teams := gt.R1(client.ListTeams(ctx)).NoError(t)
	t.Logf("Found %d teams in %s", len(teams), org)
	for _, team := range teams {
		gt.V(t, team.Slug).NotEqual("")
	}
}
