package usecase

import (
	"context"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Available(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *mockFetcher) CurrentUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockFetcher) SearchIssueCount(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

func (m *mockFetcher) UserRepos(ctx context.Context, user string) ([]*github.Repository, error) {
	args := m.Called(ctx, user)
	// We need to handle the case where the returned slice is nil (e.g., when an error occurs).
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.Repository), args.Error(1)
}

func (m *mockFetcher) UserProfile(ctx context.Context, user string) (*github.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.User), args.Error(1)
}

func (m *mockFetcher) UserEvents(ctx context.Context, user string) ([]*github.Event, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.Event), args.Error(1)
}

func (m *mockFetcher) UserGists(ctx context.Context, user string) ([]*github.Gist, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.Gist), args.Error(1)
}

func (m *mockFetcher) OpenIssueTitles(ctx context.Context, repo string) ([]string, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockFetcher) CreateIssue(ctx context.Context, repo, title, body string) error {
	return m.Called(ctx, repo, title, body).Error(0)
}
