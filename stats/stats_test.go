package stats

import (
	"testing"

	"github.com/devcards/branch-langs/catalog"
	"github.com/devcards/branch-langs/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

// TestAggregateTree will test function AggregateTree
func TestAggregateTree(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	entries := []model.TreeEntry{
		{Path: "main.go", Type: "blob", Size: intPtr(100)},
		{Path: "internal/server.go", Type: "blob", Size: intPtr(200)},
		{Path: "web/app.ts", Type: "blob", Size: intPtr(50)},
		{Path: "internal", Type: "tree"},                        // directories never count
		{Path: "assets/logo.go", Type: "blob"},                  // no size, excluded
		{Path: "LICENSE", Type: "blob", Size: intPtr(5000)},     // no extension, dropped
		{Path: "mystery.xyz", Type: "blob", Size: intPtr(7000)}, // unknown extension, dropped
	}

	expected := model.LanguageTotals{"Go": 300, "TypeScript": 50}

	assert.Equal(t, expected, AggregateTree(entries, c.Classify))

	// summation is commutative, reversing the input order changes nothing
	reversed := make([]model.TreeEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}

	assert.Equal(t, expected, AggregateTree(reversed, c.Classify))
}

// TestMergeTotals will test function MergeTotals
func TestMergeTotals(t *testing.T) {
	repoA := model.LanguageTotals{"Go": 100}
	repoB := model.LanguageTotals{"Go": 50, "Rust": 30}

	aThenB := model.LanguageTotals{}
	MergeTotals(aThenB, repoA)
	MergeTotals(aThenB, repoB)

	bThenA := model.LanguageTotals{}
	MergeTotals(bThenA, repoB)
	MergeTotals(bThenA, repoA)

	expected := model.LanguageTotals{"Go": 150, "Rust": 30}

	assert.Equal(t, expected, aThenB)
	assert.Equal(t, expected, bThenA)
}

// TestRank will test function Rank
func TestRank(t *testing.T) {
	noColor := func(string) string { return catalog.DefaultColor }

	tests := []struct {
		name     string
		totals   model.LanguageTotals
		hideSet  map[string]bool
		topN     int
		expected []model.RankedLanguage
	}{
		{
			name:    "Hidden language excluded before ranking, percent over the selected subset",
			totals:  model.LanguageTotals{"Go": 150, "Rust": 30, "Python": 10},
			hideSet: map[string]bool{"go": true},
			topN:    1,
			expected: []model.RankedLanguage{
				{Name: "Rust", SizeBytes: 30, Percent: 100, Color: catalog.DefaultColor},
			},
		},
		{
			name:   "Percent computed against the top N subset only",
			totals: model.LanguageTotals{"Go": 60, "Rust": 30, "Python": 10},
			topN:   2,
			expected: []model.RankedLanguage{
				{Name: "Go", SizeBytes: 60, Percent: 100.0 * 60 / 90, Color: catalog.DefaultColor},
				{Name: "Rust", SizeBytes: 30, Percent: 100.0 * 30 / 90, Color: catalog.DefaultColor},
			},
		},
		{
			name:   "Ties broken deterministically by name",
			totals: model.LanguageTotals{"Zig": 50, "Ada": 50},
			topN:   5,
			expected: []model.RankedLanguage{
				{Name: "Ada", SizeBytes: 50, Percent: 50, Color: catalog.DefaultColor},
				{Name: "Zig", SizeBytes: 50, Percent: 50, Color: catalog.DefaultColor},
			},
		},
		{
			name:   "Zero byte languages never appear",
			totals: model.LanguageTotals{"Go": 100, "Rust": 0},
			topN:   5,
			expected: []model.RankedLanguage{
				{Name: "Go", SizeBytes: 100, Percent: 100, Color: catalog.DefaultColor},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rank(tt.totals, tt.hideSet, tt.topN, noColor))
		})
	}
}

// TestRankClampsTopN checks the top N bounds regardless of the requested value
func TestRankClampsTopN(t *testing.T) {
	totals := model.LanguageTotals{}

	for _, lang := range []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
		"M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X",
	} {
		totals[lang] = 10
	}

	color := func(string) string { return catalog.DefaultColor }

	assert.Len(t, Rank(totals, nil, 500, color), MaxLangsCount)
	assert.Len(t, Rank(totals, nil, -3, color), MinLangsCount)
	assert.Len(t, Rank(totals, nil, 0, color), MinLangsCount)
}

// TestRankAttachesCatalogColors checks color lookup with default fallback
func TestRankAttachesCatalogColors(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	ranked := Rank(model.LanguageTotals{"Go": 100, "Whitespace": 50}, nil, 5, c.Color)

	require.Len(t, ranked, 2)
	assert.Equal(t, "#00ADD8", ranked[0].Color)
	assert.Equal(t, catalog.DefaultColor, ranked[1].Color)
}
