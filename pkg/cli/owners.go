package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/newgit/pkg/cli/config"
	"github.com/secmon-lab/newgit/pkg/infra"
	"github.com/secmon-lab/newgit/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func ownersCommand() *cli.Command {
	var (
		github   config.GitHub
		workflow config.Workflow
	)

	return &cli.Command{
		Name:      "owners",
		Aliases:   []string{"o"},
		Usage:     "List teams and members matching a prefix",
		ArgsUsage: "[prefix]",
		Flags:     slice.Flatten(github.Flags(), workflow.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			gh, err := github.New()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(gh)), workflow.Options()...)
			for _, name := range uc.SearchOwners(ctx, c.Args().First()) {
				fmt.Fprintln(c.Root().Writer, name)
			}
			return nil
		},
	}
}
