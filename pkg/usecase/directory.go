package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

const maxSearchResults = 50

// Directory caches the organization's teams and members. Snapshots are
// immutable and replaced as a whole, so readers never see a partial refresh.
type Directory struct {
	github  interfaces.GitHub
	ttl     time.Duration
	timeout time.Duration

	mutex    sync.RWMutex
	snapshot *model.Directory

	// held by the goroutine that refreshes
	refreshMutex sync.Mutex
}

func NewDirectory(github interfaces.GitHub, ttl, timeout time.Duration) *Directory {
	return &Directory{
		github:  github,
		ttl:     ttl,
		timeout: timeout,
	}
}

func (x *Directory) load() *model.Directory {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.snapshot
}

func (x *Directory) store(snapshot *model.Directory) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.snapshot = snapshot
}

func (x *Directory) fresh(ctx context.Context, snapshot *model.Directory) bool {
	return snapshot != nil && logging.CtxTime(ctx).Sub(snapshot.RefreshedAt) <= x.ttl
}

// Snapshot returns the current snapshot, refreshing it first when it is older
// than the TTL. A failed refresh keeps serving the previous snapshot and only
// fails when nothing was ever loaded.
func (x *Directory) Snapshot(ctx context.Context) (*model.Directory, error) {
	current := x.load()
	if x.fresh(ctx, current) {
		return current, nil
	}

	if current != nil {
		// Someone else is refreshing; the stale snapshot is good enough.
		if !x.refreshMutex.TryLock() {
			return current, nil
		}
	} else {
		x.refreshMutex.Lock()
	}
	defer x.refreshMutex.Unlock()

	if latest := x.load(); x.fresh(ctx, latest) {
		return latest, nil
	}

	refreshed, err := x.fetch(ctx)
	if err != nil {
		if latest := x.load(); latest != nil {
			logging.From(ctx).Warn("failed to refresh directory, keep previous snapshot",
				"error", err,
				"refreshed_at", latest.RefreshedAt,
			)
			return latest, nil
		}
		return nil, err
	}

	x.store(refreshed)
	logging.From(ctx).Debug("directory refreshed",
		"teams", len(refreshed.Teams),
		"users", len(refreshed.Users),
	)
	return refreshed, nil
}

func (x *Directory) fetch(ctx context.Context) (*model.Directory, error) {
	teams, err := callWithTimeout(ctx, x.timeout, x.github.ListTeams)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list teams")
	}

	users, err := callWithTimeout(ctx, x.timeout, x.github.ListMembers)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list members")
	}

	snapshot := &model.Directory{
		Teams:       make([]model.Team, 0, len(teams)),
		Users:       make([]model.User, 0, len(users)),
		RefreshedAt: logging.CtxTime(ctx),
	}
	for _, team := range teams {
		snapshot.Teams = append(snapshot.Teams, *team)
	}
	for _, user := range users {
		snapshot.Users = append(snapshot.Users, *user)
	}

	return snapshot, nil
}

// Names lists team names and then member logins. It returns nil when the
// directory cannot be loaded.
func (x *Directory) Names(ctx context.Context) []string {
	snapshot, err := x.Snapshot(ctx)
	if err != nil {
		logging.From(ctx).Warn("directory is unavailable", "error", err)
		return nil
	}
	return snapshot.Names()
}

// Resolve finds a team or member by case-insensitive exact name. A team wins
// over a member with the same name.
func (x *Directory) Resolve(ctx context.Context, name string) (*model.Owner, error) {
	snapshot, err := x.Snapshot(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load directory", goerr.V("owner", name))
	}

	name = strings.TrimSpace(name)
	for _, team := range snapshot.Teams {
		if strings.EqualFold(team.Name, name) || strings.EqualFold(team.Slug, name) {
			return model.TeamOwner(team), nil
		}
	}
	for _, user := range snapshot.Users {
		if strings.EqualFold(user.Login, name) {
			return model.UserOwner(user), nil
		}
	}

	return nil, goerr.Wrap(&model.OwnerResolutionError{Owner: name}, "owner not found in directory")
}

// Search returns names starting with prefix, case-insensitively, up to 50.
func (x *Directory) Search(ctx context.Context, prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	var matched []string
	for _, name := range x.Names(ctx) {
		if len(matched) >= maxSearchResults {
			break
		}
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			matched = append(matched, name)
		}
	}
	return matched
}
