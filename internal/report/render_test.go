package report

import (
	"strings"
	"testing"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
	"github.com/nbox/ProductHunt-Statistic/internal/stats"
)

func samplePosts() []domain.Post {
	return []domain.Post{
		{Name: "Alpha", Tagline: "First", VotesCount: 12, CommentsCount: 3},
		{Name: "Beta", Tagline: "Second", VotesCount: 7, CommentsCount: 1},
		{Name: "Gamma", Tagline: "Third", VotesCount: 5},
	}
}

func TestDaily(t *testing.T) {
	posts := samplePosts()
	st := stats.Compute(posts, 10)

	doc := Daily(st, posts, "05-03-2024", "Europe/Helsinki", "2024/03/05-03-2024.md")

	for _, want := range []string{
		"# Product Hunt — launches for 05-03-2024",
		"`Europe/Helsinki`",
		"## Summary",
		"- Launches: **3**",
		"- Total votes: **24**",
		"- Avg votes: **8.00**",
		"- Median votes: **7.00**",
		"- Report file: [05-03-2024](<2024/03/05-03-2024.md>)",
		"## Launches (sorted by votes)",
		"| 1 | Alpha |",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("daily report missing %q\n%s", want, doc)
		}
	}
}

func TestToday_CapsTableToTopN(t *testing.T) {
	posts := samplePosts()
	st := stats.Compute(posts, 2)

	block := Today(st, "05-03-2024", "Europe/Helsinki", "2024/03/05-03-2024.md")

	if !strings.HasPrefix(block, "### 05-03-2024 (Europe/Helsinki)") {
		t.Errorf("unexpected heading:\n%s", block)
	}
	if !strings.Contains(block, "- Launches: **3**") {
		t.Errorf("summary still counts all launches:\n%s", block)
	}
	if !strings.Contains(block, "Alpha") || !strings.Contains(block, "Beta") {
		t.Errorf("expected top-2 rows present:\n%s", block)
	}
	if strings.Contains(block, "Gamma") {
		t.Errorf("expected third launch capped out of the embed table:\n%s", block)
	}
	if !strings.HasSuffix(block, "\n") || strings.HasSuffix(block, "\n\n") {
		t.Errorf("block should end with exactly one newline")
	}
}
