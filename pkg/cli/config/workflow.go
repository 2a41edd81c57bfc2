package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/newgit/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Workflow tunes the provisioning steps.
type Workflow struct {
	directoryTTL      time.Duration
	callTimeout       time.Duration
	readinessPolls    int64
	readinessInterval time.Duration
	reviewerCount     int64
}

func (x *Workflow) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "directory-ttl",
			Usage:       "How long the team and member directory is reused",
			Category:    "Workflow",
			Value:       10 * time.Minute,
			Destination: &x.directoryTTL,
			Sources:     cli.EnvVars("NEWGIT_DIRECTORY_TTL"),
		},
		&cli.DurationFlag{
			Name:        "call-timeout",
			Usage:       "Deadline for each GitHub and Graph call",
			Category:    "Workflow",
			Value:       10 * time.Second,
			Destination: &x.callTimeout,
			Sources:     cli.EnvVars("NEWGIT_CALL_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "readiness-polls",
			Usage:       "Times to check for the default branch of a new repository",
			Category:    "Workflow",
			Value:       5,
			Destination: &x.readinessPolls,
			Sources:     cli.EnvVars("NEWGIT_READINESS_POLLS"),
		},
		&cli.DurationFlag{
			Name:        "readiness-interval",
			Usage:       "Wait between default branch checks",
			Category:    "Workflow",
			Value:       2 * time.Second,
			Destination: &x.readinessInterval,
			Sources:     cli.EnvVars("NEWGIT_READINESS_INTERVAL"),
		},
		&cli.Int64Flag{
			Name:        "reviewer-count",
			Usage:       "Required approving reviews on the default branch",
			Category:    "Workflow",
			Value:       1,
			Destination: &x.reviewerCount,
			Sources:     cli.EnvVars("NEWGIT_REVIEWER_COUNT"),
		},
	}
}

func (x Workflow) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithDirectoryTTL(x.directoryTTL),
		usecase.WithCallTimeout(x.callTimeout),
		usecase.WithReadinessPolls(int(x.readinessPolls), x.readinessInterval),
		usecase.WithReviewerCount(int(x.reviewerCount)),
	}
}

func (x Workflow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("DirectoryTTL", x.directoryTTL),
		slog.Duration("CallTimeout", x.callTimeout),
		slog.Int64("ReadinessPolls", x.readinessPolls),
		slog.Duration("ReadinessInterval", x.readinessInterval),
		slog.Int64("ReviewerCount", x.reviewerCount),
	)
}
