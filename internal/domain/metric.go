// Package domain contains the core data structures and domain logic for the application.
package domain

// Unavailable is the text shown in place of a metric that could not be fetched.
const Unavailable = "(unavailable)"

// Metric names, in the order they are gathered.
const (
	MetricMergedPRs           = "merged_prs"
	MetricCoauthoredPRs       = "coauthored_prs"
	MetricTotalStars          = "total_stars"
	MetricPublicRepos         = "public_repos"
	MetricFollowers           = "followers"
	MetricFollowing           = "following"
	MetricRecentContributions = "recent_contributions"
	MetricYearContributions   = "year_contributions"
	MetricTotalPRs            = "total_prs"
	MetricTotalIssues         = "total_issues"
	MetricGists               = "gists"
)

// Metric is the outcome of fetching a single fact about a user.
// It is either a value or unavailable; the zero value is unavailable.
type Metric struct {
	value string
	ok    bool
}

// Ok returns an available metric holding v.
func Ok(v string) Metric {
	return Metric{value: v, ok: true}
}

// Missing returns an unavailable metric.
func Missing() Metric {
	return Metric{}
}

// Available reports whether the metric was fetched successfully.
func (m Metric) Available() bool {
	return m.ok
}

// Value returns the fetched value and whether it is present.
func (m Metric) Value() (string, bool) {
	return m.value, m.ok
}

// String returns the value, or the unavailability sentinel.
func (m Metric) String() string {
	if !m.ok {
		return Unavailable
	}
	return m.value
}

// UserMetrics maps metric names to their outcome for one user.
type UserMetrics map[string]Metric

// Get returns the named metric; absent names are unavailable.
func (u UserMetrics) Get(name string) Metric {
	return u[name]
}
