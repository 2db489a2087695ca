// Package page renders the achievement statistics into a static HTML page.
package page

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/fsutil"
	"github.com/naka-gawa/github-achievements/internal/gateway"
	"github.com/naka-gawa/github-achievements/internal/usecase"
)

// DefaultOutput is where the page is written when no path is given.
const DefaultOutput = "docs/index.html"

// DemoUser is shown when no statistics could be fetched.
const DemoUser = "YourUsername"

// ProjectURL is linked from the page footer.
const ProjectURL = "https://github.com/naka-gawa/github-achievements"

//go:embed index.html.tmpl
var indexTemplate string

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

// pageMetrics are the metrics shown as cards, in display order.
var pageMetrics = []struct {
	Name  string
	Label string
}{
	{domain.MetricMergedPRs, "Merged PRs"},
	{domain.MetricCoauthoredPRs, "Co-authored PRs"},
	{domain.MetricTotalStars, "Total Stars"},
	{domain.MetricPublicRepos, "Public Repos"},
	{domain.MetricFollowers, "Followers"},
	{domain.MetricFollowing, "Following"},
	{domain.MetricYearContributions, "Contributions This Year (approx.)"},
}

// Card is one statistic on the page.
type Card struct {
	Label string
	Value string
}

// StarSummary describes how stars are spread across repositories.
type StarSummary struct {
	Repos  int
	Mean   float64
	Median float64
	Max    float64
}

// Stats is everything the page shows.
type Stats struct {
	User    string
	Updated time.Time
	Cards   []Card
	Stars   *StarSummary
	// Demo is set when nothing could be fetched and the values are placeholders.
	Demo bool
}

// Generator collects statistics and writes the page.
type Generator struct {
	fetcher  gateway.Fetcher
	reporter *usecase.Reporter
	logger   *log.Logger
	now      func() time.Time
}

// NewGenerator creates a Generator that gathers metrics through reporter.
func NewGenerator(fetcher gateway.Fetcher, reporter *usecase.Reporter, logger *log.Logger) *Generator {
	return &Generator{
		fetcher:  fetcher,
		reporter: reporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Collect fetches the page statistics. If the user cannot be resolved, or
// every card metric is unavailable, it returns the demo dataset.
func (g *Generator) Collect(ctx context.Context) Stats {
	updated := g.now()

	user, err := g.fetcher.CurrentUser(ctx)
	if err != nil {
		g.logger.Printf("Page: identity resolution failed, using demo data: %v\n", err)
		return DemoStats(updated)
	}

	// Stars come from a single repository listing shared with the summary.
	names := make([]string, 0, len(pageMetrics))
	for _, pm := range pageMetrics {
		if pm.Name != domain.MetricTotalStars {
			names = append(names, pm.Name)
		}
	}
	metrics := g.reporter.GatherMetrics(ctx, user, names...)
	totalStars, summary := g.stars(ctx, user)
	metrics[domain.MetricTotalStars] = totalStars

	cards := make([]Card, 0, len(pageMetrics))
	available := 0
	for _, pm := range pageMetrics {
		value := "N/A"
		if v, ok := metrics.Get(pm.Name).Value(); ok {
			value = v
			available++
		}
		cards = append(cards, Card{Label: pm.Label, Value: value})
	}
	if available == 0 {
		g.logger.Println("Page: every metric is unavailable, using demo data")
		return DemoStats(updated)
	}

	return Stats{
		User:    user,
		Updated: updated,
		Cards:   cards,
		Stars:   summary,
	}
}

// stars lists the repositories once and derives both the total and the
// distribution from it.
func (g *Generator) stars(ctx context.Context, user string) (domain.Metric, *StarSummary) {
	repos, err := g.fetcher.UserRepos(ctx, user)
	if err != nil {
		g.logger.Printf("Page: repositories unavailable: %v\n", err)
		return domain.Missing(), nil
	}
	total := domain.Ok(strconv.Itoa(usecase.TotalStars(repos)))
	summary, err := SummarizeStars(starCounts(repos))
	if err != nil {
		g.logger.Printf("Page: star distribution unavailable: %v\n", err)
		return total, nil
	}
	return total, summary
}

// SummarizeStars computes the distribution of per-repository star counts.
func SummarizeStars(counts []int) (*StarSummary, error) {
	data := stats.LoadRawData(counts)
	if data.Len() == 0 {
		return nil, fmt.Errorf("no repositories")
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}
	maxStars, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	return &StarSummary{Repos: data.Len(), Mean: mean, Median: median, Max: maxStars}, nil
}

// DemoStats is the all-zero placeholder dataset.
func DemoStats(updated time.Time) Stats {
	cards := make([]Card, 0, len(pageMetrics))
	for _, pm := range pageMetrics {
		cards = append(cards, Card{Label: pm.Label, Value: "0"})
	}
	return Stats{User: DemoUser, Updated: updated, Cards: cards, Demo: true}
}

// Render produces the HTML document for s.
func Render(s Stats) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Stats
		UpdatedText string
		ProjectURL  string
	}{
		Stats:       s,
		UpdatedText: s.Updated.Format(time.DateTime),
		ProjectURL:  ProjectURL,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate collects, renders and writes the page to path.
func (g *Generator) Generate(ctx context.Context, path string) (Stats, error) {
	s := g.Collect(ctx)
	html, err := Render(s)
	if err != nil {
		return s, err
	}
	if err := fsutil.WriteFileAtomic(path, html, 0o644); err != nil {
		return s, err
	}
	g.logger.Printf("Page: wrote %s (%d bytes)\n", path, len(html))
	return s, nil
}

func starCounts(repos []*github.Repository) []int {
	counts := make([]int, 0, len(repos))
	for _, r := range repos {
		counts = append(counts, r.GetStargazersCount())
	}
	return counts
}
