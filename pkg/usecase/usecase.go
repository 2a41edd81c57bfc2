package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/infra"
)

const (
	defaultDirectoryTTL      = 10 * time.Minute
	defaultCallTimeout       = 10 * time.Second
	defaultReadinessPolls    = 5
	defaultReadinessInterval = 2 * time.Second

	// Chat select menus cap the number of options.
	maxTemplates = 99
)

type UseCase struct {
	clients   *infra.Clients
	directory *Directory

	requiredGroup  types.AzureGroupID
	trustedDomains []string
	templates      []string

	directoryTTL           time.Duration
	callTimeout            time.Duration
	readinessPolls         int
	readinessInterval      time.Duration
	reviewerCount          int
	requireCodeOwnerReview bool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRequiredGroup sets the directory group whose transitive members may
// provision repositories.
func WithRequiredGroup(groupID types.AzureGroupID) Option {
	return func(x *UseCase) {
		x.requiredGroup = groupID
	}
}

// WithTrustedDomains authorizes every email in the given domains without a
// directory lookup.
func WithTrustedDomains(domains ...string) Option {
	return func(x *UseCase) {
		x.trustedDomains = append(x.trustedDomains, domains...)
	}
}

// WithTemplates sets the template catalog offered to requesters. When the
// catalog is not empty, template requests outside of it are rejected.
func WithTemplates(templates ...string) Option {
	return func(x *UseCase) {
		x.templates = append(x.templates, templates...)
	}
}

func WithDirectoryTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.directoryTTL = ttl
	}
}

// WithCallTimeout bounds every call to an external service.
func WithCallTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.callTimeout = d
	}
}

// WithReadinessPolls sets how many times the default branch is probed after
// creation and the wait between probes.
func WithReadinessPolls(polls int, interval time.Duration) Option {
	return func(x *UseCase) {
		x.readinessPolls = polls
		x.readinessInterval = interval
	}
}

func WithReviewerCount(n int) Option {
	return func(x *UseCase) {
		x.reviewerCount = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:                clients,
		directoryTTL:           defaultDirectoryTTL,
		callTimeout:            defaultCallTimeout,
		readinessPolls:         defaultReadinessPolls,
		readinessInterval:      defaultReadinessInterval,
		reviewerCount:          model.DefaultReviewerCount,
		requireCodeOwnerReview: true,
	}

	for _, opt := range options {
		opt(uc)
	}

	if clients.GitHub() != nil {
		uc.directory = NewDirectory(clients.GitHub(), uc.directoryTTL, uc.callTimeout)
	}

	return uc
}

// Directory returns the owner directory cache, or nil when no GitHub client
// is configured.
func (x *UseCase) Directory() *Directory {
	return x.directory
}

// Templates implements interfaces.UseCase.
func (x *UseCase) Templates() []string {
	if len(x.templates) > maxTemplates {
		return x.templates[:maxTemplates]
	}
	return x.templates
}

// callWithTimeout runs fn under its own deadline. Exceeding the deadline tags
// the error with model.ErrTimeout.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := fn(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return resp, model.WithKind(model.ErrTimeout, err)
		}
		return resp, err
	}
	return resp, nil
}

func execWithTimeout(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	_, err := callWithTimeout(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
