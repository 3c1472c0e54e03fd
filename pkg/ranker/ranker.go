package ranker

import (
	"sort"

	"github.com/arnvik/paperscore/pkg/scorer"
)

// Entry is one paper's position in a ranking.
type Entry struct {
	PaperID string `json:"paper_id"`
	Total   int    `json:"total_score"`
}

// Rank orders rows by total score, descending. The sort is stable: papers
// with equal totals keep their discovery order, so the first paper seen
// wins the first position among ties.
func Rank(rows []scorer.Row) (ranked []Entry) {
	ranked = make([]Entry, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, Entry{PaperID: row.PaperID, Total: row.Total})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	return ranked
}

// Top returns the first k entries of a ranking.
func Top(ranked []Entry, k int) (top []Entry) {
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	top = ranked[:k]
	return top
}
