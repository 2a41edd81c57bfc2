package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/newgit/pkg/domain/mock"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/usecase"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

func directoryMock(teams []*model.Team, users []*model.User) *mock.GitHubMock {
	return &mock.GitHubMock{
		ListTeamsFunc: func(ctx context.Context) ([]*model.Team, error) {
			return teams, nil
		},
		ListMembersFunc: func(ctx context.Context) ([]*model.User, error) {
			return users, nil
		},
	}
}

func atTime(ctx context.Context, tm time.Time) context.Context {
	return logging.CtxWithTime(ctx, func() time.Time { return tm })
}

func TestDirectoryNames(t *testing.T) {
	gh := directoryMock(
		[]*model.Team{{Name: "Security", Slug: "security"}, {Name: "Platform", Slug: "platform"}},
		[]*model.User{{Login: "alice"}, {Login: "bob"}},
	)
	dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

	names := dir.Names(context.Background())
	gt.V(t, names).Equal([]string{"Security", "Platform", "alice", "bob"})
}

func TestDirectoryResolve(t *testing.T) {
	t.Run("team name is matched case-insensitively", func(t *testing.T) {
		gh := directoryMock(
			[]*model.Team{{Name: "security", Slug: "security"}},
			[]*model.User{{Login: "alice"}},
		)
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		owner := gt.R1(dir.Resolve(context.Background(), "Security")).NoError(t)
		gt.True(t, owner.IsTeam())
		gt.V(t, owner.Team.Slug).Equal("security")
		gt.V(t, owner.Handle("acme")).Equal("@acme/security")
	})

	t.Run("team wins over a user with the same name", func(t *testing.T) {
		gh := directoryMock(
			[]*model.Team{{Name: "security", Slug: "security"}},
			[]*model.User{{Login: "alice"}, {Login: "Security"}},
		)
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		for _, name := range []string{"security", "SECURITY", "Security"} {
			owner := gt.R1(dir.Resolve(context.Background(), name)).NoError(t)
			gt.True(t, owner.IsTeam())
		}
	})

	t.Run("user login", func(t *testing.T) {
		gh := directoryMock(
			[]*model.Team{{Name: "security", Slug: "security"}},
			[]*model.User{{Login: "alice"}},
		)
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		owner := gt.R1(dir.Resolve(context.Background(), "ALICE")).NoError(t)
		gt.False(t, owner.IsTeam())
		gt.V(t, owner.Handle("acme")).Equal("@alice")
	})

	t.Run("unknown owner", func(t *testing.T) {
		gh := directoryMock([]*model.Team{{Name: "security", Slug: "security"}}, nil)
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		_, err := dir.Resolve(context.Background(), "nonexistent-team")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrOwnerResolution))
		gt.S(t, model.UserMessage(err)).Contains("nonexistent-team")
	})
}

func TestDirectorySearch(t *testing.T) {
	t.Run("case-insensitive prefix", func(t *testing.T) {
		gh := directoryMock(
			[]*model.Team{{Name: "Security", Slug: "security"}, {Name: "SRE", Slug: "sre"}, {Name: "Platform", Slug: "platform"}},
			[]*model.User{{Login: "sam"}, {Login: "alice"}},
		)
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		gt.V(t, dir.Search(context.Background(), "s")).Equal([]string{"Security", "SRE", "sam"})
		gt.V(t, dir.Search(context.Background(), "SEC")).Equal([]string{"Security"})
		gt.V(t, len(dir.Search(context.Background(), "zzz"))).Equal(0)
	})

	t.Run("capped at 50", func(t *testing.T) {
		var users []*model.User
		for i := 0; i < 80; i++ {
			users = append(users, &model.User{Login: fmt.Sprintf("user%02d", i)})
		}
		dir := usecase.NewDirectory(directoryMock(nil, users), 10*time.Minute, time.Second)

		gt.V(t, len(dir.Search(context.Background(), "user"))).Equal(50)
		gt.V(t, len(dir.Search(context.Background(), ""))).Equal(50)
		gt.V(t, dir.Search(context.Background(), "")[0]).Equal("user00")
	})
}

func TestDirectoryTTL(t *testing.T) {
	gh := directoryMock([]*model.Team{{Name: "security", Slug: "security"}}, nil)
	dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = dir.Names(atTime(context.Background(), base))
	gt.V(t, len(gh.ListTeamsCalls())).Equal(1)

	_ = dir.Names(atTime(context.Background(), base.Add(5*time.Minute)))
	gt.V(t, len(gh.ListTeamsCalls())).Equal(1)

	_ = dir.Names(atTime(context.Background(), base.Add(10*time.Minute)))
	gt.V(t, len(gh.ListTeamsCalls())).Equal(1)

	_ = dir.Names(atTime(context.Background(), base.Add(10*time.Minute+time.Second)))
	gt.V(t, len(gh.ListTeamsCalls())).Equal(2)
	gt.V(t, len(gh.ListMembersCalls())).Equal(2)
}

func TestDirectoryRefreshFailure(t *testing.T) {
	t.Run("keeps previous snapshot", func(t *testing.T) {
		fail := false
		gh := &mock.GitHubMock{
			ListTeamsFunc: func(ctx context.Context) ([]*model.Team, error) {
				if fail {
					return nil, errors.New("rate limited")
				}
				return []*model.Team{{Name: "security", Slug: "security"}}, nil
			},
			ListMembersFunc: func(ctx context.Context) ([]*model.User, error) {
				return []*model.User{{Login: "alice"}}, nil
			},
		}
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		gt.V(t, dir.Names(atTime(context.Background(), base))).Equal([]string{"security", "alice"})

		fail = true
		later := atTime(context.Background(), base.Add(time.Hour))
		gt.V(t, dir.Names(later)).Equal([]string{"security", "alice"})

		owner := gt.R1(dir.Resolve(later, "security")).NoError(t)
		gt.True(t, owner.IsTeam())
	})

	t.Run("fails without any snapshot", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListTeamsFunc: func(ctx context.Context) ([]*model.Team, error) {
				return nil, errors.New("unavailable")
			},
		}
		dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

		gt.V(t, len(dir.Names(context.Background()))).Equal(0)

		_, err := dir.Resolve(context.Background(), "security")
		gt.Error(t, err)
		gt.False(t, errors.Is(err, model.ErrOwnerResolution))
	})
}

func TestDirectoryConcurrentAccess(t *testing.T) {
	gh := directoryMock(
		[]*model.Team{{Name: "security", Slug: "security"}},
		[]*model.User{{Login: "alice"}},
	)
	dir := usecase.NewDirectory(gh, 10*time.Minute, time.Second)

	var wg sync.WaitGroup
	results := make([][]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = dir.Names(context.Background())
		}(i)
	}
	wg.Wait()

	for _, names := range results {
		gt.V(t, names).Equal([]string{"security", "alice"})
	}
	// First load is shared, later callers reuse the fresh snapshot.
	gt.V(t, len(gh.ListTeamsCalls())).Equal(1)
}
