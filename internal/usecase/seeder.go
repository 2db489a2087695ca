package usecase

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/naka-gawa/github-achievements/internal/config"
	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/gateway"
)

// MsgAllExist is printed when a seed run creates nothing and nothing failed.
const MsgAllExist = "All achievement issues already exist."

// Seeder is the use case behind the seed command. It creates the catalog
// issues that are not already open in the tracked repository.
type Seeder struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	catalog []domain.IssueCandidate
}

// NewSeeder creates a Seeder over the canonical catalog.
func NewSeeder(fetcher gateway.Fetcher, logger *log.Logger) *Seeder {
	return &Seeder{
		fetcher: fetcher,
		logger:  logger,
		catalog: domain.Catalog,
	}
}

// Pending returns the enabled catalog entries whose titles are not in open,
// in catalog order.
func Pending(catalog []domain.IssueCandidate, doc domain.Document, open []string) []domain.IssueCandidate {
	existing := make(map[string]bool, len(open))
	for _, title := range open {
		existing[title] = true
	}
	var pending []domain.IssueCandidate
	for _, c := range catalog {
		if existing[c.Title] || !config.Enabled(doc, c.Achievement) {
			continue
		}
		existing[c.Title] = true
		pending = append(pending, c)
	}
	return pending
}

// Seed creates the missing issues and returns how many were created and the
// process exit code. Individual creation failures are printed and skipped.
func (s *Seeder) Seed(ctx context.Context, doc domain.Document, stdout, stderr io.Writer) (int, int) {
	if !s.fetcher.Available(ctx) {
		fmt.Fprintln(stderr, MsgToolMissing)
		fmt.Fprintln(stderr, MsgInstallHint)
		return 0, 1
	}

	repo := config.Repo(doc)
	s.logger.Printf("Usecase: Seeding issues in %s (catalog v%d)...\n", repo, domain.CatalogVersion)

	open, err := s.fetcher.OpenIssueTitles(ctx, repo)
	if err != nil {
		// Without the open titles nothing can be created idempotently.
		fmt.Fprintf(stderr, "Error listing open issues in %s: %v\n", repo, err)
		return 0, 0
	}

	created, failed := 0, 0
	for _, c := range Pending(s.catalog, doc, open) {
		if err := s.fetcher.CreateIssue(ctx, repo, c.Title, c.Body); err != nil {
			fmt.Fprintf(stdout, "Error creating '%s': %v\n", c.Title, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "Created: %s\n", c.Title)
		created++
	}

	switch {
	case created == 0 && failed == 0:
		fmt.Fprintln(stdout, MsgAllExist)
	case created == 0:
		fmt.Fprintf(stdout, "No achievement issues created (%d failed).\n", failed)
	}
	s.logger.Printf("Usecase: Seeding complete, %d created, %d failed.\n", created, failed)
	return created, 0
}
