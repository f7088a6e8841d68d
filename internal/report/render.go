package report

import (
	"fmt"
	"strings"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
)

// Daily renders the standalone report document for one day: title, timezone
// disclosure, the full aggregate summary and the complete launch table.
func Daily(st domain.DailyStats, posts []domain.Post, label, tzName, relLink string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Product Hunt — launches for %s\n", label)
	fmt.Fprintf(&b, "_Timezone for “today”: `%s`. Source: Product Hunt API._\n\n", tzName)

	b.WriteString("## Summary\n\n")
	writeSummary(&b, st, label, relLink)
	b.WriteString("\n")

	b.WriteString("## Launches (sorted by votes)\n\n")
	b.WriteString(Table(posts))

	return b.String()
}

// Today renders the compact block embedded into the host README: a short
// summary plus the table capped to the top-N launches by votes.
func Today(st domain.DailyStats, label, tzName, relLink string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s (%s)\n\n", label, tzName)
	fmt.Fprintf(&b, "- Launches: **%d**\n", st.Count)
	fmt.Fprintf(&b, "- Total votes: **%d**\n", st.TotalVotes)
	fmt.Fprintf(&b, "- Avg / Median votes: **%.2f / %.2f**\n", st.AvgVotes, st.MedianVotes)
	fmt.Fprintf(&b, "- Avg / Median comments: **%.2f / %.2f**\n", st.AvgComments, st.MedianComments)
	fmt.Fprintf(&b, "- Unique makers: **%d**\n", st.UniqueMakers)
	fmt.Fprintf(&b, "- Most prolific maker: **%s**\n", Escape(st.ProlificMaker))
	fmt.Fprintf(&b, "- Full report: %s\n\n", SafeLink(label, relLink))
	b.WriteString(Table(st.TopByVotes))

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSummary(b *strings.Builder, st domain.DailyStats, label, relLink string) {
	fmt.Fprintf(b, "- Launches: **%d**\n", st.Count)
	fmt.Fprintf(b, "- Total votes: **%d**\n", st.TotalVotes)
	fmt.Fprintf(b, "- Avg votes: **%.2f**\n", st.AvgVotes)
	fmt.Fprintf(b, "- Median votes: **%.2f**\n", st.MedianVotes)
	fmt.Fprintf(b, "- Total comments: **%d**\n", st.TotalComments)
	fmt.Fprintf(b, "- Avg comments: **%.2f**\n", st.AvgComments)
	fmt.Fprintf(b, "- Median comments: **%.2f**\n", st.MedianComments)
	fmt.Fprintf(b, "- Unique makers: **%d**\n", st.UniqueMakers)
	fmt.Fprintf(b, "- Most prolific maker: **%s**\n", Escape(st.ProlificMaker))
	fmt.Fprintf(b, "- Report file: %s\n", SafeLink(label, relLink))
}
