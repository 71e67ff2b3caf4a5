package model

// RepositoryRef is the subset of repository metadata kept after discovery
type RepositoryRef struct {
	FullName   string `json:"fullName"`
	Owner      string `json:"owner"`
	Repository string `json:"repository"`
	IsFork     bool   `json:"-"`
	IsArchived bool   `json:"-"`
}

// TreeEntry is one entry of a recursive branch tree
// only blob entries with a known size contribute to aggregation
type TreeEntry struct {
	Path string
	Type string
	Size *int
}

// LanguageTotals maps a language name to its accumulated byte count
type LanguageTotals map[string]int

// RankedLanguage is one line of the final card
// Percent is computed against the selected top N subset, not the grand total
type RankedLanguage struct {
	Name      string  `json:"name"`
	SizeBytes int     `json:"sizeBytes"`
	Percent   float64 `json:"percent"`
	Color     string  `json:"color"`
}

// RepositoryFailure records a repository that could not be resolved
// the aggregation continues without it
type RepositoryFailure struct {
	Repository string `json:"repository"`
	Reason     string `json:"reason"`
}

// DebugReport is the structured dump returned when debug mode is requested
type DebugReport struct {
	User         string              `json:"user"`
	Branch       string              `json:"branch"`
	RepoCount    int                 `json:"repoCount"`
	Repositories []RepositoryRef     `json:"repositories"`
	Totals       LanguageTotals      `json:"totals"`
	Ranked       []RankedLanguage    `json:"ranked"`
	Failures     []RepositoryFailure `json:"failures,omitempty"`
	Truncated    bool                `json:"truncated"`
}
