package gateway

import (
	"context"
	"errors"
	"log"
	"net/url"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-achievements/internal/ghcli"
)

// issueListLimit caps "gh issue list"; the default of 30 would hide titles
// in busy repositories and break seeding idempotence.
const issueListLimit = "1000"

// CLIGateway implements Fetcher on top of the gh CLI, which owns
// authentication.
type CLIGateway struct {
	client *ghcli.Client
	logger *log.Logger
}

// NewCLIGateway creates a Fetcher that shells out through client.
func NewCLIGateway(client *ghcli.Client, logger *log.Logger) *CLIGateway {
	return &CLIGateway{client: client, logger: logger}
}

func (g *CLIGateway) Available(ctx context.Context) bool {
	return g.client.Available(ctx)
}

func (g *CLIGateway) CurrentUser(ctx context.Context) (string, error) {
	var user github.User
	if err := g.client.InvokeJSON(ctx, &user, "api", "user"); err != nil {
		return "", err
	}
	if user.GetLogin() == "" {
		return "", errors.New("gh api user returned no login")
	}
	return user.GetLogin(), nil
}

func (g *CLIGateway) SearchIssueCount(ctx context.Context, query string) (int, error) {
	var result github.IssuesSearchResult
	// Fields default to POST; search only answers GET.
	err := g.client.InvokeJSON(ctx, &result, "api", "--method", "GET", "/search/issues", "-f", "q="+query)
	if err != nil {
		return 0, err
	}
	return result.GetTotal(), nil
}

func (g *CLIGateway) UserRepos(ctx context.Context, user string) ([]*github.Repository, error) {
	return ghcli.InvokeList[*github.Repository](ctx, g.client,
		"api", "/users/"+url.PathEscape(user)+"/repos?per_page=100", "--paginate")
}

func (g *CLIGateway) UserProfile(ctx context.Context, user string) (*github.User, error) {
	var profile github.User
	if err := g.client.InvokeJSON(ctx, &profile, "api", "/users/"+url.PathEscape(user)); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (g *CLIGateway) UserEvents(ctx context.Context, user string) ([]*github.Event, error) {
	return ghcli.InvokeList[*github.Event](ctx, g.client,
		"api", "/users/"+url.PathEscape(user)+"/events?per_page=100")
}

func (g *CLIGateway) UserGists(ctx context.Context, user string) ([]*github.Gist, error) {
	return ghcli.InvokeList[*github.Gist](ctx, g.client,
		"api", "/users/"+url.PathEscape(user)+"/gists?per_page=100", "--paginate")
}

func (g *CLIGateway) OpenIssueTitles(ctx context.Context, repo string) ([]string, error) {
	var issues []struct {
		Title string `json:"title"`
	}
	err := g.client.InvokeJSON(ctx, &issues,
		"issue", "list", "--repo", repo, "--state", "open", "--json", "title", "--limit", issueListLimit)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(issues))
	for _, issue := range issues {
		titles = append(titles, issue.Title)
	}
	return titles, nil
}

func (g *CLIGateway) CreateIssue(ctx context.Context, repo, title, body string) error {
	out, err := g.client.Run(ctx, "issue", "create", "--repo", repo, "--title", title, "--body", body)
	if err != nil {
		return err
	}
	g.logger.Printf("  Created issue %s", out)
	return nil
}
