package catalog

import (
	"fmt"
	"strings"
)

// DefaultColor is used for any language the catalog has no color for
const DefaultColor = "#858585"

// Language describes one catalog entry
// extensions are stored lowercase without the leading dot
type Language struct {
	Name       string
	Extensions []string
	Color      string
}

// Catalog resolves file paths to language names through a precomputed
// extension index, and language names to display colors
type Catalog struct {
	byExtension map[string]string
	colors      map[string]string
}

// New builds the lookup index for the given entries
// a duplicate extension claim is rejected so that classification never
// depends on iteration order
func New(languages []Language) (*Catalog, error) {
	c := &Catalog{
		byExtension: make(map[string]string),
		colors:      make(map[string]string),
	}

	for _, lang := range languages {
		c.colors[lang.Name] = lang.Color

		for _, ext := range lang.Extensions {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))

			if claimedBy, exists := c.byExtension[ext]; exists {
				return nil, fmt.Errorf("extension %q claimed by both %q and %q", ext, claimedBy, lang.Name)
			}

			c.byExtension[ext] = lang.Name
		}
	}

	return c, nil
}

// Default returns a catalog over the built-in language table
func Default() (*Catalog, error) {
	return New(KnownLanguages)
}

// Classify maps a file path to a language name by extension
// paths without an extension (including bare dotfiles) return false
func (c *Catalog) Classify(path string) (string, bool) {
	segment := path

	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		segment = path[idx+1:]
	}

	dot := strings.LastIndexByte(segment, '.')

	if dot <= 0 {
		return "", false
	}

	lang, found := c.byExtension[strings.ToLower(segment[dot+1:])]
	return lang, found
}

// Color returns the display color for a language, or DefaultColor when the
// language is not in the catalog
func (c *Catalog) Color(language string) string {
	if color, found := c.colors[language]; found && color != "" {
		return color
	}

	return DefaultColor
}
