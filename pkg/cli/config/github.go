package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

// GitHub selects token auth when a token is given and GitHub App auth
// otherwise.
type GitHub struct {
	org        types.GitHubOrg
	token      types.GitHubToken         `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "GitHub organization where repositories are created",
			Category:    "GitHub",
			Destination: (*string)(&x.org),
			Sources:     cli.EnvVars("NEWGIT_GITHUB_ORG"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with admin:org and repo scopes",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("NEWGIT_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when no token is given",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("NEWGIT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID for the organization",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("NEWGIT_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("NEWGIT_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) New() (*githubapi.Client, error) {
	switch {
	case x.token != "":
		return githubapi.NewWithToken(x.org, x.token)
	case x.appID != 0 && x.installID != 0 && x.privateKey != "":
		return githubapi.NewWithApp(x.org, x.appID, x.installID, x.privateKey)
	default:
		return nil, goerr.New("either --github-token or GitHub App ID, install ID and private key are required",
			goerr.V("org", x.org))
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Org", x.org.String()),
		slog.Int("token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
