package config

import (
	"log/slog"

	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Authorization struct {
	requiredGroup  types.AzureGroupID
	trustedDomains []string
}

func (x *Authorization) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "required-group",
			Usage:       "Azure AD group ID whose transitive members may create repositories",
			Category:    "Authorization",
			Destination: (*string)(&x.requiredGroup),
			Sources:     cli.EnvVars("NEWGIT_REQUIRED_GROUP"),
		},
		&cli.StringSliceFlag{
			Name:        "trusted-domain",
			Usage:       "Email domain allowed without a group check (repeatable)",
			Category:    "Authorization",
			Destination: &x.trustedDomains,
			Sources:     cli.EnvVars("NEWGIT_TRUSTED_DOMAINS"),
		},
	}
}

func (x Authorization) Options() []usecase.Option {
	var options []usecase.Option
	if x.requiredGroup != "" {
		options = append(options, usecase.WithRequiredGroup(x.requiredGroup))
	}
	if len(x.trustedDomains) > 0 {
		options = append(options, usecase.WithTrustedDomains(x.trustedDomains...))
	}
	return options
}

func (x Authorization) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RequiredGroup", string(x.requiredGroup)),
		slog.Any("TrustedDomains", x.trustedDomains),
	)
}
