// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Directives printed when a command cannot start.
const (
	MsgToolMissing      = "Error: GitHub CLI (gh) is not installed."
	MsgInstallHint      = "Install it from: https://cli.github.com/"
	MsgNotAuthenticated = "Error: Not authenticated with GitHub. Run 'gh auth login' first."
)

// DefaultConcurrency is the number of metric queries in flight at once.
const DefaultConcurrency = 4

// contributionEvents are the event types counted by the rolling estimate.
var contributionEvents = map[string]bool{
	"PushEvent":         true,
	"PullRequestEvent":  true,
	"IssuesEvent":       true,
	"IssueCommentEvent": true,
}

// Reporter is the use case behind the status command. It gathers every
// metric independently; one failed query never affects the others.
type Reporter struct {
	fetcher     gateway.Fetcher
	logger      *log.Logger
	concurrency int
	now         func() time.Time
}

// ReporterOption customizes a Reporter.
type ReporterOption func(*Reporter)

// WithConcurrency bounds the number of parallel metric queries. Values
// below 1 mean sequential.
func WithConcurrency(n int) ReporterOption {
	return func(r *Reporter) {
		if n < 1 {
			n = 1
		}
		r.concurrency = n
	}
}

// WithClock sets the clock used for the current-year metric.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) {
		r.now = now
	}
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		fetcher:     fetcher,
		logger:      logger,
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type metricQuery struct {
	name  string
	fetch func(ctx context.Context, user string) (string, error)
}

func (r *Reporter) metricQueries() []metricQuery {
	return []metricQuery{
		{domain.MetricMergedPRs, r.searchMetric("is:pr is:merged author:%[1]s")},
		{domain.MetricCoauthoredPRs, r.searchMetric("is:pr is:merged author:%[1]s co-authored-by:%[1]s")},
		{domain.MetricTotalStars, r.totalStars},
		{domain.MetricPublicRepos, r.profileMetric(func(p *github.User) int { return p.GetPublicRepos() })},
		{domain.MetricFollowers, r.profileMetric(func(p *github.User) int { return p.GetFollowers() })},
		{domain.MetricFollowing, r.profileMetric(func(p *github.User) int { return p.GetFollowing() })},
		{domain.MetricRecentContributions, r.recentContributions},
		{domain.MetricYearContributions, r.yearContributions},
		{domain.MetricTotalPRs, r.searchMetric("is:pr author:%[1]s")},
		{domain.MetricTotalIssues, r.searchMetric("is:issue author:%[1]s")},
		{domain.MetricGists, r.gists},
	}
}

// MetricNames lists every metric in gathering order.
func MetricNames() []string {
	queries := (&Reporter{now: time.Now}).metricQueries()
	names := make([]string, len(queries))
	for i, s := range queries {
		names[i] = s.name
	}
	return names
}

// GatherUserMetrics fetches every metric for user. Failed queries yield an
// unavailable metric.
func (r *Reporter) GatherUserMetrics(ctx context.Context, user string) domain.UserMetrics {
	return r.GatherMetrics(ctx, user, MetricNames()...)
}

// GatherMetrics fetches only the named metrics for user. Unknown names are
// ignored.
func (r *Reporter) GatherMetrics(ctx context.Context, user string, names ...string) domain.UserMetrics {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var queries []metricQuery
	for _, q := range r.metricQueries() {
		if wanted[q.name] {
			queries = append(queries, q)
		}
	}

	r.logger.Printf("Usecase: Gathering %d metrics...\n", len(queries))
	results := make([]domain.Metric, len(queries))

	// Metric goroutines never return an error, so the group context is only
	// canceled by the parent.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for i, q := range queries {
		eg.Go(func() error {
			results[i] = r.fetchMetric(egCtx, q, user)
			return nil
		})
	}
	_ = eg.Wait()

	metrics := make(domain.UserMetrics, len(queries))
	for i, q := range queries {
		metrics[q.name] = results[i]
	}
	r.logger.Println("Usecase: All metrics gathered.")
	return metrics
}

func (r *Reporter) fetchMetric(ctx context.Context, q metricQuery, user string) domain.Metric {
	value, err := q.fetch(ctx, user)
	if err != nil {
		r.logger.Printf("  %s unavailable: %v\n", q.name, err)
		return domain.Missing()
	}
	return domain.Ok(value)
}

// Report runs the status command: it resolves the authenticated user,
// gathers metrics and writes the report to stdout. It returns the process
// exit code.
func (r *Reporter) Report(ctx context.Context, doc domain.Document, stdout, stderr io.Writer) int {
	if !r.fetcher.Available(ctx) {
		fmt.Fprintln(stderr, MsgToolMissing)
		fmt.Fprintln(stderr, MsgInstallHint)
		return 1
	}

	user, err := r.fetcher.CurrentUser(ctx)
	if err != nil {
		r.logger.Printf("Usecase: identity resolution failed: %v\n", err)
		fmt.Fprintln(stderr, MsgNotAuthenticated)
		return 1
	}

	metrics := r.GatherUserMetrics(ctx, user)
	fmt.Fprint(stdout, FormatReport(user, doc, metrics))
	return 0
}

func (r *Reporter) searchMetric(format string) func(context.Context, string) (string, error) {
	return func(ctx context.Context, user string) (string, error) {
		count, err := r.fetcher.SearchIssueCount(ctx, fmt.Sprintf(format, user))
		if err != nil {
			return "", err
		}
		return strconv.Itoa(count), nil
	}
}

func (r *Reporter) totalStars(ctx context.Context, user string) (string, error) {
	repos, err := r.fetcher.UserRepos(ctx, user)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(TotalStars(repos)), nil
}

// profileMetric issues its own profile query so each profile field fails
// independently.
func (r *Reporter) profileMetric(field func(*github.User) int) func(context.Context, string) (string, error) {
	return func(ctx context.Context, user string) (string, error) {
		p, err := r.fetcher.UserProfile(ctx, user)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", fmt.Errorf("empty profile for %s", user)
		}
		return strconv.Itoa(field(p)), nil
	}
}

// recentContributions approximates activity from the last 100 public events.
func (r *Reporter) recentContributions(ctx context.Context, user string) (string, error) {
	events, err := r.fetcher.UserEvents(ctx, user)
	if err != nil {
		return "", err
	}
	n := 0
	for _, event := range events {
		if contributionEvents[event.GetType()] {
			n++
		}
	}
	return fmt.Sprintf("~%d (last 100 events)", n), nil
}

// yearContributions approximates this year's contributions as authored PRs
// plus authored issues plus approved PRs created this year.
func (r *Reporter) yearContributions(ctx context.Context, user string) (string, error) {
	year := r.now().Year()
	span := fmt.Sprintf("created:%d-01-01..%d-12-31", year, year)
	queries := []string{
		fmt.Sprintf("is:pr author:%s %s", user, span),
		fmt.Sprintf("is:issue author:%s %s", user, span),
		fmt.Sprintf("is:pr review:approved author:%s %s", user, span),
	}
	total := 0
	for _, q := range queries {
		count, err := r.fetcher.SearchIssueCount(ctx, q)
		if err != nil {
			return "", err
		}
		total += count
	}
	return strconv.Itoa(total), nil
}

func (r *Reporter) gists(ctx context.Context, user string) (string, error) {
	gists, err := r.fetcher.UserGists(ctx, user)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(gists)), nil
}

// TotalStars sums stargazer counts across repos.
func TotalStars(repos []*github.Repository) int {
	total := 0
	for _, repo := range repos {
		total += repo.GetStargazersCount()
	}
	return total
}
