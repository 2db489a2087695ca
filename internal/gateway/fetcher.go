// Package gateway provides access to GitHub, either through the gh CLI or
// directly through the REST and GraphQL APIs.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Fetcher defines the queries the status, seed and page commands need.
type Fetcher interface {
	// Available reports whether the backend can be used at all.
	Available(ctx context.Context) bool
	CurrentUser(ctx context.Context) (string, error)
	SearchIssueCount(ctx context.Context, query string) (int, error)
	UserRepos(ctx context.Context, user string) ([]*github.Repository, error)
	UserProfile(ctx context.Context, user string) (*github.User, error)
	// UserEvents returns the most recent page of up to 100 events.
	UserEvents(ctx context.Context, user string) ([]*github.Event, error)
	UserGists(ctx context.Context, user string) ([]*github.Gist, error)
	OpenIssueTitles(ctx context.Context, repo string) ([]string, error)
	CreateIssue(ctx context.Context, repo, title, body string) error
}

func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}
