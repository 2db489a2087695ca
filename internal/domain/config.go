package domain

import "encoding/json"

// DefaultRepo is the placeholder target repository.
const DefaultRepo = "owner/repo"

// Achievement names known to the configuration document.
const (
	PullShark          = "pull_shark"
	GalaxyBrain        = "galaxy_brain"
	Starstruck         = "starstruck"
	PairExtraordinaire = "pair_extraordinaire"
	Quickdraw          = "quickdraw"
	YOLO               = "yolo"
	PublicSponsor      = "public_sponsor"
	Hacker             = "hacker"
	Founder            = "founder"
	Developer          = "developer"
	Llama              = "llama"
	ArcticCodeVault    = "arctic_code_vault"
)

// Document is the persisted configuration: a JSON object with a "repo"
// string and an "achievements" object keyed by achievement name.
type Document map[string]any

const defaultDocument = `{
  "repo": "owner/repo",
  "achievements": {
    "pull_shark": {"threshold": [2, 16, 128, 1024], "enabled": true},
    "galaxy_brain": {"threshold": [2, 8, 16, 32], "enabled": true},
    "starstruck": {"threshold": [16, 128, 512, 4096], "enabled": true},
    "pair_extraordinaire": {"threshold": [1, 10, 24, 48], "enabled": true},
    "quickdraw": {"enabled": true},
    "yolo": {"enabled": true},
    "public_sponsor": {"enabled": true},
    "hacker": {"enabled": true},
    "founder": {"enabled": true},
    "developer": {"enabled": true},
    "llama": {"threshold": [1000], "enabled": true},
    "arctic_code_vault": {"enabled": true}
  }
}`

// DefaultDocument returns a fresh copy of the built-in configuration.
// Values have the same Go types as a document decoded from disk.
func DefaultDocument() Document {
	var doc Document
	if err := json.Unmarshal([]byte(defaultDocument), &doc); err != nil {
		panic("domain: invalid default document: " + err.Error())
	}
	return doc
}
