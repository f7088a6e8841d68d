package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
)

// Compute reduces one day's launches to their aggregates. Pure; posts is
// not modified. topN caps the TopByVotes slice only.
func Compute(posts []domain.Post, topN int) domain.DailyStats {
	count := len(posts)

	votes := make([]int, count)
	comments := make([]int, count)
	totalVotes, totalComments := 0, 0
	for i, p := range posts {
		votes[i] = p.VotesCount
		comments[i] = p.CommentsCount
		totalVotes += p.VotesCount
		totalComments += p.CommentsCount
	}

	uniqueMakers, prolific := makerAggregates(posts)

	top := make([]domain.Post, count)
	copy(top, posts)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].VotesCount > top[j].VotesCount
	})
	if topN > 0 && topN < len(top) {
		top = top[:topN]
	}

	return domain.DailyStats{
		Count:          count,
		TotalVotes:     totalVotes,
		AvgVotes:       average(totalVotes, count),
		MedianVotes:    Median(votes),
		TotalComments:  totalComments,
		AvgComments:    average(totalComments, count),
		MedianComments: Median(comments),
		UniqueMakers:   uniqueMakers,
		ProlificMaker:  prolific,
		TopByVotes:     top,
	}
}

// Median is the standard statistical median: middle element for an odd
// count, mean of the two central elements for an even count, 0.0 on empty.
func Median(values []int) float64 {
	n := len(values)
	if n == 0 {
		return 0.0
	}
	sorted := make([]int, n)
	copy(sorted, values)
	sort.Ints(sorted)

	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2.0
}

func average(total, count int) float64 {
	if count == 0 {
		return 0.0
	}
	return float64(total) / float64(count)
}

// makerAggregates groups launches by maker handle (falling back to display
// name) and picks the most prolific key; ties break on highest count, then
// ascending key so the result is deterministic.
func makerAggregates(posts []domain.Post) (unique int, prolific string) {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, m := range p.Makers {
			key := strings.TrimSpace(m.Username)
			if key == "" {
				key = strings.TrimSpace(m.Name)
			}
			if key == "" {
				continue
			}
			counts[key]++
		}
	}

	if len(counts) == 0 {
		return 0, domain.Placeholder
	}

	best := ""
	for key, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && key < best) {
			best = key
		}
	}

	return len(counts), fmt.Sprintf("%s (%d launches)", best, counts[best])
}
