package domain

import (
	"time"
)

// Placeholder stands in for absent optional values in rendered output.
const Placeholder = "—"

// Maker is one credited maker of a launch.
type Maker struct {
	Name     string
	Username string
	URL      string
}

// Post is a single Product Hunt launch, as fetched for the target day.
// Never mutated after fetch.
type Post struct {
	Name          string
	Tagline       string
	Description   string
	URL           string
	Website       string
	VotesCount    int
	CommentsCount int
	Makers        []Maker
}

// TimeWindow is the half-open [Start, End) day interval in the configured
// timezone, with the labels derived from its start date.
type TimeWindow struct {
	Start time.Time
	End   time.Time

	// Label is DD-MM-YYYY, used for filenames and headers.
	Label string
	Year  string
	Month string
}

// PostedAfter is the UTC lower query bound, Z-suffixed ISO-8601.
func (w TimeWindow) PostedAfter() string {
	return isoZ(w.Start)
}

// PostedBefore is the UTC upper query bound, Z-suffixed ISO-8601.
func (w TimeWindow) PostedBefore() string {
	return isoZ(w.End)
}

func isoZ(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// DailyStats are the aggregates computed once per run over the fetched set.
type DailyStats struct {
	Count          int
	TotalVotes     int
	AvgVotes       float64
	MedianVotes    float64
	TotalComments  int
	AvgComments    float64
	MedianComments float64
	UniqueMakers   int
	ProlificMaker  string
	TopByVotes     []Post
}
