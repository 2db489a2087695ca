package config

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/github-achievements/internal/domain"
)

// Repo returns the tracked "owner/name" repository.
func Repo(doc domain.Document) string {
	if s, ok := Get(doc, "repo", domain.DefaultRepo).(string); ok && s != "" {
		return s
	}
	return domain.DefaultRepo
}

// SetRepo validates repo and stores it in doc.
func SetRepo(doc domain.Document, repo string) error {
	if err := ValidateRepo(repo); err != nil {
		return err
	}
	doc["repo"] = repo
	return nil
}

// Enabled reports whether an achievement is enabled. Unknown or malformed
// entries count as enabled.
func Enabled(doc domain.Document, achievement string) bool {
	b, ok := Get(doc, "achievements."+achievement+".enabled", true).(bool)
	return !ok || b
}

// Thresholds returns the configured tier thresholds for an achievement in
// ascending order of appearance, or nil when none are configured.
func Thresholds(doc domain.Document, achievement string) []int {
	raw, ok := Get(doc, "achievements."+achievement+".threshold", nil).([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidateRepo checks that repo has the form "owner/name".
func ValidateRepo(repo string) error {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	if strings.ContainsAny(repo, " \t\n") {
		return fmt.Errorf("invalid repository %q: must not contain whitespace", repo)
	}
	return nil
}
