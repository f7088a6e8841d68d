package report

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
)

const teaserLimit = 80

// Escape makes text safe inside a Markdown table cell: embedded newlines
// become spaces and pipes are backslash-escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.TrimSpace(s)
}

// SafeLink renders [label](<url>), or just the escaped label when the URL
// is blank.
func SafeLink(label, url string) string {
	label = Escape(label)
	url = strings.TrimSpace(url)
	if url == "" {
		return label
	}
	return fmt.Sprintf("[%s](<%s>)", label, url)
}

// Table renders one row per launch, votes descending. The sort is stable so
// equal-vote launches keep their fetched order.
func Table(posts []domain.Post) string {
	var b strings.Builder
	b.WriteString("| # | App | Tagline | Description | Maker(s) | Votes | Comments | Web |\n")
	b.WriteString("|---:|---|---|---|---|---:|---:|---|\n")

	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VotesCount > sorted[j].VotesCount
	})

	for i, p := range sorted {
		app := Escape(p.Name)
		if strings.TrimSpace(p.URL) != "" {
			app = SafeLink(p.Name, p.URL)
		}

		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %d | %d | %s |\n",
			i+1,
			app,
			cellOrPlaceholder(Escape(p.Tagline)),
			descriptionCell(p.Description),
			makersCell(p.Makers),
			p.VotesCount,
			p.CommentsCount,
			websiteCell(p.Website),
		)
	}

	return b.String()
}

// descriptionCell shows a one-line teaser; longer text folds into an inline
// collapsible region with HTML-significant characters entity-escaped and
// newlines turned into explicit breaks.
func descriptionCell(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return domain.Placeholder
	}

	teaser := Escape(desc)
	runes := []rune(teaser)
	truncated := false
	if len(runes) > teaserLimit {
		teaser = strings.TrimSpace(string(runes[:teaserLimit])) + "…"
		truncated = true
	}

	if !truncated && !strings.ContainsAny(desc, "\n") {
		return teaser
	}

	full := html.EscapeString(desc)
	full = strings.ReplaceAll(full, "\r\n", "<br>")
	full = strings.ReplaceAll(full, "\n", "<br>")
	full = strings.ReplaceAll(full, "|", `\|`)

	return fmt.Sprintf("%s <details><summary>full description</summary>%s</details>", teaser, full)
}

// makersCell links each maker as "Name (@username)". A missing profile URL
// falls back to the public @username page.
func makersCell(makers []domain.Maker) string {
	if len(makers) == 0 {
		return domain.Placeholder
	}

	out := make([]string, 0, len(makers))
	for _, m := range makers {
		username := strings.TrimSpace(m.Username)
		name := Escape(m.Name)
		url := strings.TrimSpace(m.URL)

		if url == "" && username != "" {
			url = "https://www.producthunt.com/@" + username
		}

		label := name
		switch {
		case name != "" && username != "":
			label = fmt.Sprintf("%s (@%s)", name, username)
		case name == "" && username != "":
			label = "@" + username
		case name == "":
			label = "maker"
		}

		out = append(out, SafeLink(label, url))
	}

	return strings.Join(out, ", ")
}

func websiteCell(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return domain.Placeholder
	}
	return fmt.Sprintf("[🔗](<%s>)", website)
}

func cellOrPlaceholder(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}
