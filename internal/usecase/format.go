package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naka-gawa/github-achievements/internal/config"
	"github.com/naka-gawa/github-achievements/internal/domain"
)

// llamaGoal is the yearly contribution target used when none is configured.
const llamaGoal = 1000

// ApproximationNote tells the reader which figures are estimates.
const ApproximationNote = "Figures marked (approx.) are estimates from search results and recent events, not exact badge progress."

type badgeLine struct {
	achievement string
	text        string
}

type badgeSection struct {
	title string
	lines []badgeLine
}

// FormatReport renders the status report. Achievements disabled in doc are
// left out; numeric badges with configured thresholds show the next tier.
func FormatReport(user string, doc domain.Document, m domain.UserMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GitHub user: %s\n", user)
	fmt.Fprintf(&b, "Tracking repo: %s\n\n", config.Repo(doc))

	tiered := func(achievement, label, metric string) badgeLine {
		value := m.Get(metric)
		return badgeLine{achievement, fmt.Sprintf("%s: %s%s", label, value, tierHint(value, config.Thresholds(doc, achievement)))}
	}
	manual := func(achievement, text string) badgeLine {
		return badgeLine{achievement, text}
	}

	goal := llamaGoal
	if t := config.Thresholds(doc, domain.Llama); len(t) > 0 {
		goal = t[len(t)-1]
	}

	sections := []badgeSection{
		{"PR-Based:", []badgeLine{
			tiered(domain.PullShark, "Pull Shark (merged PRs)", domain.MetricMergedPRs),
			tiered(domain.PairExtraordinaire, "Pair Extraordinaire (co-authored PRs)", domain.MetricCoauthoredPRs),
			manual(domain.Quickdraw, "Quickdraw: (manual - close issue within 5 min)"),
			manual(domain.YOLO, "YOLO: (manual - merge without review)"),
		}},
		{"Community:", []badgeLine{
			manual(domain.GalaxyBrain, "Galaxy Brain (accepted answers): (manual)"),
			manual(domain.PublicSponsor, "Public Sponsor: (manual)"),
		}},
		{"Profile:", []badgeLine{
			tiered(domain.Starstruck, "Starstruck (total stars)", domain.MetricTotalStars),
			tiered(domain.Hacker, "Hacker (public repos)", domain.MetricPublicRepos),
			manual(domain.Founder, "Founder (first repo): (manual)"),
			manual(domain.Developer, "Developer (profile pic): (manual)"),
			manual(domain.Llama, fmt.Sprintf("Llama (%d contributions/year, approx.): %s / %d", goal, m.Get(domain.MetricYearContributions), goal)),
			manual(domain.ArcticCodeVault, "Arctic Code Vault (2020 contributors): (manual - one-time)"),
		}},
	}

	b.WriteString("=== Achievement Badges ===\n")
	first := true
	for _, section := range sections {
		var lines []string
		for _, line := range section.lines {
			if config.Enabled(doc, line.achievement) {
				lines = append(lines, line.text)
			}
		}
		if len(lines) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(section.title + "\n")
		for _, line := range lines {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n=== Profile Stats ===\n")
	stats := []struct {
		label  string
		metric string
	}{
		{"Followers", domain.MetricFollowers},
		{"Following", domain.MetricFollowing},
		{"Public Repos", domain.MetricPublicRepos},
		{"Total Stars", domain.MetricTotalStars},
		{"Total PRs", domain.MetricTotalPRs},
		{"Total Issues", domain.MetricTotalIssues},
		{"Gists", domain.MetricGists},
		{"Recent Contributions (approx.)", domain.MetricRecentContributions},
	}
	for _, s := range stats {
		fmt.Fprintf(&b, "  %s: %s\n", s.label, m.Get(s.metric))
	}
	b.WriteString("\n" + ApproximationNote + "\n")
	return b.String()
}

// tierHint describes the next threshold above a numeric value. It is empty
// when the value is unavailable or not a plain integer, or when no
// thresholds are configured.
func tierHint(value domain.Metric, thresholds []int) string {
	if len(thresholds) == 0 {
		return ""
	}
	raw, ok := value.Value()
	if !ok {
		return ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return ""
	}
	for _, t := range thresholds {
		if n < t {
			return fmt.Sprintf(" (next tier: %d)", t)
		}
	}
	return " (max tier reached)"
}
