package gitremote

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
)

// TokenFunc returns a token accepted by the git host for HTTPS access.
type TokenFunc func(ctx context.Context) (string, error)

// Client lists remote references over smart HTTP without cloning.
type Client struct {
	token TokenFunc
}

var _ interfaces.GitRemote = (*Client)(nil)

func New(token TokenFunc) *Client {
	return &Client{token: token}
}

// HasBranch implements interfaces.GitRemote. An empty remote has no branch.
func (x *Client) HasBranch(ctx context.Context, cloneURL, branch string) (bool, error) {
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{cloneURL},
	})

	opts := &git.ListOptions{}
	if x.token != nil {
		token, err := x.token(ctx)
		if err != nil {
			return false, goerr.Wrap(err, "failed to get git access token")
		}
		opts.Auth = &githttp.BasicAuth{
			Username: "x-access-token",
			Password: token,
		}
	}

	refs, err := remote.ListContext(ctx, opts)
	if err != nil {
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to list remote references", goerr.V("url", cloneURL))
	}

	want := plumbing.NewBranchReferenceName(branch)
	for _, ref := range refs {
		if ref.Name() == want {
			return true, nil
		}
	}

	return false, nil
}
