package domain

// IssueCandidate is a suggested action item. Title is the idempotence key.
type IssueCandidate struct {
	Achievement string
	Title       string
	Body        string
}

// CatalogVersion identifies the revision of Catalog.
const CatalogVersion = 1

// Catalog is the canonical list of action items, in creation order.
var Catalog = []IssueCandidate{
	// PR-based
	{Achievement: PullShark, Title: "Pull Shark: find 2 good starter issues", Body: "List 2 repos/issues to open legit PRs."},
	{Achievement: PairExtraordinaire, Title: "Pair Extraordinaire: co-author a commit", Body: "Coordinate a co-authored PR with a collaborator."},
	{Achievement: Quickdraw, Title: "Quickdraw: open + close a small issue", Body: "Create a tiny issue and close it quickly with a fix."},
	{Achievement: YOLO, Title: "YOLO: merge a PR without review", Body: "Create a PR in your repo and merge without review if policy allows."},

	// Community
	{Achievement: GalaxyBrain, Title: "Galaxy Brain: answer 2 Q&A discussions", Body: "Find 2 unanswered Q&A discussions and respond with helpful answers."},
	{Achievement: PublicSponsor, Title: "Public Sponsor: pick a project to sponsor", Body: "Choose a project and confirm sponsorship plan."},

	// Repository
	{Achievement: Starstruck, Title: "Starstruck: build a star-worthy repo", Body: "Outline plan for a repo that solves a real problem."},
	{Achievement: Hacker, Title: "Hacker: create first public repo", Body: "Create your first public repository."},
	{Achievement: Founder, Title: "Founder: create first repo", Body: "Create your first repository (public or private)."},

	// Profile
	{Achievement: Developer, Title: "Developer: set profile picture", Body: "Upload a profile picture to your GitHub account."},
	{Achievement: Llama, Title: "Llama: reach 1000 contributions", Body: "Make 1000 contributions in a year - aim for consistent daily contributions."},
}
