package model

import (
	"strings"
)

// StatsQuery carries every query parameter of the stats endpoint
// display related fields are forwarded to the card renderer untouched
type StatsQuery struct {
	User            string `form:"user"`
	Branch          string `form:"branch"`
	ExcludeRepos    string `form:"exclude_repos"`
	IncludeForks    string `form:"include_forks"`
	IncludeArchived string `form:"include_archived"`
	Hide            string `form:"hide"`
	LangsCount      int    `form:"langs_count"`
	MaxRepos        int    `form:"max_repos"`
	Debug           string `form:"debug"`

	Layout      string `form:"layout"`
	Theme       string `form:"theme"`
	TitleColor  string `form:"title_color"`
	TextColor   string `form:"text_color"`
	BgColor     string `form:"bg_color"`
	BorderColor string `form:"border_color"`
	HideTitle   string `form:"hide_title"`
	HideBorder  string `form:"hide_border"`
	Locale      string `form:"locale"`
	CustomTitle string `form:"custom_title"`
	CardWidth   int    `form:"card_width"`
}

// ParseBool interprets the boolean-ish query values accepted by the endpoint
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

// ParseNameSet splits a comma or whitespace separated list into a lowercased
// lookup set, used for both exclude_repos and hide
func ParseNameSet(value string) map[string]bool {
	set := make(map[string]bool)

	for _, name := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		set[strings.ToLower(name)] = true
	}

	return set
}

// Clamp forces value into [min, max], using fallback when the value is unset (zero)
func Clamp(value, fallback, min, max int) int {
	if value == 0 {
		value = fallback
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
