package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// APIGateway implements Fetcher against the REST and GraphQL APIs with a
// personal access token.
type APIGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// viewerQuery resolves the login that owns the token.
type viewerQuery struct {
	Viewer struct {
		Login githubv4.String
	}
}

// NewAPIGateway is a constructor that creates a new instance of APIGateway.
func NewAPIGateway(token string, logger *log.Logger) (*APIGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &APIGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// Available is always true; a bad token surfaces as a CurrentUser failure.
func (g *APIGateway) Available(context.Context) bool {
	return true
}

func (g *APIGateway) CurrentUser(ctx context.Context) (string, error) {
	g.logger.Println("[api] Resolving viewer login using GraphQL...")
	var q viewerQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return "", fmt.Errorf("failed to execute GraphQL viewer query: %w", err)
	}
	if q.Viewer.Login == "" {
		return "", fmt.Errorf("GraphQL viewer query returned no login")
	}
	return string(q.Viewer.Login), nil
}

func (g *APIGateway) SearchIssueCount(ctx context.Context, query string) (int, error) {
	g.logger.Printf("[api] Searching issues: %s\n", query)
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}
	result, _, err := g.restClient.Search.Issues(ctx, query, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to search issues with REST API: %w", err)
	}
	return result.GetTotal(), nil
}

func (g *APIGateway) UserRepos(ctx context.Context, user string) ([]*github.Repository, error) {
	g.logger.Printf("[api] Fetching repositories of %s...\n", user)
	opts := &github.RepositoryListByUserOptions{ListOptions: github.ListOptions{PerPage: 100}}
	var repos []*github.Repository
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
		}
		repos = append(repos, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	return repos, nil
}

func (g *APIGateway) UserProfile(ctx context.Context, user string) (*github.User, error) {
	g.logger.Printf("[api] Fetching profile of %s...\n", user)
	profile, _, err := g.restClient.Users.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user with REST API: %w", err)
	}
	return profile, nil
}

func (g *APIGateway) UserEvents(ctx context.Context, user string) ([]*github.Event, error) {
	g.logger.Printf("[api] Fetching recent events of %s...\n", user)
	events, _, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, user, false, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to list events with REST API: %w", err)
	}
	return events, nil
}

func (g *APIGateway) UserGists(ctx context.Context, user string) ([]*github.Gist, error) {
	g.logger.Printf("[api] Fetching gists of %s...\n", user)
	opts := &github.GistListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	var gists []*github.Gist
	for {
		page, resp, err := g.restClient.Gists.List(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list gists with REST API: %w", err)
		}
		gists = append(gists, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of gists...")
	}
	return gists, nil
}

// OpenIssueTitles lists open issues of repo. Pull requests, which the issues
// endpoint also returns, are skipped.
func (g *APIGateway) OpenIssueTitles(ctx context.Context, repo string) ([]string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("[api] Listing open issues of %s...\n", repo)
	opts := &github.IssueListByRepoOptions{State: "open", ListOptions: github.ListOptions{PerPage: 100}}
	var titles []string
	for {
		issues, resp, err := g.restClient.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues with REST API: %w", err)
		}
		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			titles = append(titles, issue.GetTitle())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of issues...")
	}
	return titles, nil
}

func (g *APIGateway) CreateIssue(ctx context.Context, repo, title, body string) error {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return err
	}
	issue, _, err := g.restClient.Issues.Create(ctx, owner, name, &github.IssueRequest{
		Title: github.String(title),
		Body:  github.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to create issue with REST API: %w", err)
	}
	g.logger.Printf("  Created issue %s\n", issue.GetHTMLURL())
	return nil
}
