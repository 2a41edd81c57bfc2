package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func provisionCommand() *cli.Command {
	var (
		req   model.RepositoryRequest
		email string
		cfg   provisioner
	)

	return &cli.Command{
		Name:    "provision",
		Aliases: []string{"p"},
		Usage:   "Create one repository with CODEOWNERS and branch protection",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Repository name",
				Required:    true,
				Destination: &req.Name,
			},
			&cli.StringFlag{
				Name:        "template",
				Usage:       `Template repository (owner/name) or "none"`,
				Value:       model.TemplateNone,
				Destination: &req.Template,
			},
			&cli.StringFlag{
				Name:        "visibility",
				Usage:       "Visibility [public|private|internal]",
				Value:       string(types.VisibilityPrivate),
				Destination: (*string)(&req.Visibility),
			},
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Team or user written to CODEOWNERS",
				Required:    true,
				Destination: &req.Owner,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "Repository description",
				Destination: &req.Description,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "Requester email, checked against the authorization policy when given",
				Sources:     cli.EnvVars("NEWGIT_REQUESTER_EMAIL"),
				Destination: &email,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting provision",
				slog.Any("Request", req),
				slog.Any("Config", &cfg),
			)

			uc, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}

			if email != "" {
				decision, err := uc.Authorize(ctx, email)
				if err != nil {
					return err
				}
				if !decision.Authorized {
					return goerr.New(decision.Reason, goerr.V("email", email))
				}
				req.RequestedBy = email
			}

			_, ctx = logging.CtxRequestID(ctx)
			result, err := uc.Provision(ctx, &req)
			if err != nil {
				return goerr.Wrap(err, model.UserMessage(err), goerr.V("kind", model.Classify(err)))
			}

			fmt.Fprintln(c.Root().Writer, result.Repository.HTMLURL)
			for _, w := range result.Warnings {
				fmt.Fprintf(c.Root().ErrWriter, "warning (%s): %s\n", w.Step, w.Message)
			}
			return nil
		},
	}
}
