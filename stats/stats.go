package stats

import (
	"sort"
	"strings"

	"github.com/devcards/branch-langs/model"
)

// ClassifyFunc maps a file path to a language name
type ClassifyFunc func(path string) (string, bool)

// ColorFunc maps a language name to a display color
type ColorFunc func(language string) string

// AggregateTree folds a branch tree into per language byte totals
// only blob entries with a known size are counted, unclassifiable paths are dropped
func AggregateTree(entries []model.TreeEntry, classify ClassifyFunc) model.LanguageTotals {
	totals := make(model.LanguageTotals)

	for _, entry := range entries {
		if entry.Type != "blob" || entry.Size == nil {
			continue
		}

		if lang, found := classify(entry.Path); found {
			totals[lang] += *entry.Size
		}
	}

	return totals
}

// MergeTotals sums src into dst key by key
// summation is commutative, so merge order never changes the result
func MergeTotals(dst, src model.LanguageTotals) {
	for lang, size := range src {
		dst[lang] += size
	}
}

// topN bounds
const (
	MinLangsCount = 1
	MaxLangsCount = 20
)

// Rank filters out hidden languages, sorts the rest by descending byte total
// and returns the top N with percentage shares and display colors
//
// Percent is computed against the sum over the selected subset only: hidden
// languages and languages cut by the top N limit are not part of the
// percentage base, so the shares of the returned items always add up to 100.
func Rank(totals model.LanguageTotals, hideSet map[string]bool, topN int, color ColorFunc) []model.RankedLanguage {
	if topN < MinLangsCount {
		topN = MinLangsCount
	}

	if topN > MaxLangsCount {
		topN = MaxLangsCount
	}

	ranked := make([]model.RankedLanguage, 0, len(totals))

	for lang, size := range totals {
		if size <= 0 || hideSet[strings.ToLower(lang)] {
			continue
		}

		ranked = append(ranked, model.RankedLanguage{Name: lang, SizeBytes: size})
	}

	// ties broken by name to stay deterministic for a fixed input
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SizeBytes != ranked[j].SizeBytes {
			return ranked[i].SizeBytes > ranked[j].SizeBytes
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	subsetTotal := 0
	for _, item := range ranked {
		subsetTotal += item.SizeBytes
	}

	for i := range ranked {
		ranked[i].Percent = 100 * float64(ranked[i].SizeBytes) / float64(subsetTotal)
		ranked[i].Color = color(ranked[i].Name)
	}

	return ranked
}
