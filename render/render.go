package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/devcards/branch-langs/model"
)

// Options are the display parameters forwarded verbatim from the endpoint
type Options struct {
	Layout      string
	Theme       string
	TitleColor  string
	TextColor   string
	BgColor     string
	BorderColor string
	HideTitle   bool
	HideBorder  bool
	Locale      string
	CustomTitle string
	CardWidth   int
}

type theme struct {
	title  string
	text   string
	bg     string
	border string
}

var themes = map[string]theme{
	"default":    {title: "#2F80ED", text: "#434D58", bg: "#FFFEFE", border: "#E4E2E2"},
	"dark":       {title: "#FFFFFF", text: "#9F9F9F", bg: "#151515", border: "#E4E2E2"},
	"radical":    {title: "#FE428E", text: "#A9FEF7", bg: "#141321", border: "#E4E2E2"},
	"tokyonight": {title: "#70A5FD", text: "#38BDAE", bg: "#1A1B27", border: "#E4E2E2"},
}

var titles = map[string]string{
	"en": "Most Used Languages",
	"de": "Meistgenutzte Sprachen",
	"fr": "Langages les plus utilisés",
	"es": "Lenguajes más usados",
}

const (
	minCardWidth     = 230
	defaultCardWidth = 300
	rowHeight        = 40
	legendRowHeight  = 20
	padding          = 25
)

var hexColorPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Card renders the ranked languages as an SVG document
// layout is either "compact" (one stacked bar plus a legend) or the default
// row per language layout
func Card(items []model.RankedLanguage, opts Options) string {
	th := resolveTheme(opts)
	width := opts.CardWidth

	if width == 0 {
		width = defaultCardWidth
	}

	if width < minCardWidth {
		width = minCardWidth
	}

	title := titles["en"]

	if t, found := titles[strings.ToLower(opts.Locale)]; found {
		title = t
	}

	if opts.CustomTitle != "" {
		title = opts.CustomTitle
	}

	bodyTop := padding

	if !opts.HideTitle {
		bodyTop += 35
	}

	var body string
	var bodyHeight int

	if strings.EqualFold(opts.Layout, "compact") {
		body, bodyHeight = compactBody(items, width)
	} else {
		body, bodyHeight = defaultBody(items, width)
	}

	height := bodyTop + bodyHeight + padding

	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" fill="none" role="img">`, width, height, width, height)
	sb.WriteString("\n")

	fmt.Fprintf(&sb,
		`<style>.title{font:600 18px 'Segoe UI',Ubuntu,sans-serif;fill:%s}.lang{font:400 11px 'Segoe UI',Ubuntu,sans-serif;fill:%s}</style>`,
		th.title, th.text)
	sb.WriteString("\n")

	strokeWidth := 1
	if opts.HideBorder {
		strokeWidth = 0
	}

	fmt.Fprintf(&sb,
		`<rect x="0.5" y="0.5" width="%d" height="%d" rx="4.5" fill="%s" stroke="%s" stroke-width="%d"/>`,
		width-1, height-1, th.bg, th.border, strokeWidth)
	sb.WriteString("\n")

	if !opts.HideTitle {
		fmt.Fprintf(&sb, `<text x="%d" y="35" class="title">%s</text>`, padding, html.EscapeString(title))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, `<g transform="translate(0, %d)">`, bodyTop)
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

// defaultBody renders one row per language with a proportional progress bar
func defaultBody(items []model.RankedLanguage, width int) (string, int) {
	var sb strings.Builder

	barWidth := width - 2*padding

	for i, item := range items {
		y := i * rowHeight
		fill := float64(barWidth) * item.Percent / 100

		fmt.Fprintf(&sb, `<g transform="translate(%d, %d)">`, padding, y)
		fmt.Fprintf(&sb, `<text x="0" y="12" class="lang">%s</text>`, html.EscapeString(item.Name))
		fmt.Fprintf(&sb, `<text x="%d" y="12" text-anchor="end" class="lang">%.1f%%</text>`, barWidth, item.Percent)
		fmt.Fprintf(&sb, `<rect x="0" y="19" width="%d" height="8" rx="4" fill="#DDDDDD"/>`, barWidth)
		fmt.Fprintf(&sb, `<rect x="0" y="19" width="%.1f" height="8" rx="4" fill="%s"/>`, fill, item.Color)
		sb.WriteString("</g>\n")
	}

	return sb.String(), len(items) * rowHeight
}

// compactBody renders a single stacked bar followed by a two column legend
func compactBody(items []model.RankedLanguage, width int) (string, int) {
	var sb strings.Builder

	barWidth := width - 2*padding
	offset := 0.0

	fmt.Fprintf(&sb, `<g transform="translate(%d, 0)">`, padding)
	fmt.Fprintf(&sb, `<mask id="bar"><rect x="0" y="0" width="%d" height="8" rx="5" fill="white"/></mask>`, barWidth)
	sb.WriteString(`<g mask="url(#bar)">`)

	for _, item := range items {
		segment := float64(barWidth) * item.Percent / 100
		fmt.Fprintf(&sb, `<rect x="%.1f" y="0" width="%.1f" height="8" fill="%s"/>`, offset, segment, item.Color)
		offset += segment
	}

	sb.WriteString("</g>\n")

	rows := (len(items) + 1) / 2
	column := barWidth / 2

	for i, item := range items {
		x := (i / rows) * column
		y := 25 + (i%rows)*legendRowHeight

		fmt.Fprintf(&sb, `<g transform="translate(%d, %d)">`, x, y)
		fmt.Fprintf(&sb, `<circle cx="5" cy="-4" r="5" fill="%s"/>`, item.Color)
		fmt.Fprintf(&sb, `<text x="15" y="0" class="lang">%s %.1f%%</text>`, html.EscapeString(item.Name), item.Percent)
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</g>\n")

	return sb.String(), 25 + rows*legendRowHeight
}

// resolveTheme picks the named theme and applies per color overrides
func resolveTheme(opts Options) theme {
	th, found := themes[strings.ToLower(opts.Theme)]

	if !found {
		th = themes["default"]
	}

	if c := normalizeColor(opts.TitleColor); c != "" {
		th.title = c
	}

	if c := normalizeColor(opts.TextColor); c != "" {
		th.text = c
	}

	if c := normalizeColor(opts.BgColor); c != "" {
		th.bg = c
	}

	if c := normalizeColor(opts.BorderColor); c != "" {
		th.border = c
	}

	return th
}

// normalizeColor accepts 3, 6 or 8 digit hex values with or without the
// leading #, anything else is ignored
func normalizeColor(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")

	if value == "" || !hexColorPattern.MatchString(value) {
		return ""
	}

	return "#" + value
}
