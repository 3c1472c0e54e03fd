package scorer

import (
	"fmt"

	"github.com/arnvik/paperscore/pkg/evidence"
	"github.com/arnvik/paperscore/pkg/policy"
)

// Row is the aggregation result for one paper.
type Row struct {
	PaperID string         `json:"paper_id"`
	Title   string         `json:"title,omitempty"`
	Link    string         `json:"link,omitempty"`
	Scores  map[string]int `json:"scores"`
	Total   int            `json:"total_score"`

	// Details holds one entry per criterion in rubric order, carrying
	// everything report rendering and diagnostics need.
	Details []CriterionResult `json:"details"`
}

// CriterionResult records how one criterion was scored.
type CriterionResult struct {
	CriterionID string   `json:"criterion_id"`
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	Weight      int      `json:"weight"`
	Reason      string   `json:"reason"`
	Quotes      []string `json:"quotes,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// Aggregator applies one strategy across a rubric's criteria.
type Aggregator struct {
	rubric   policy.Rubric
	strategy Strategy
}

// NewAggregator creates an aggregator for the given rubric and strategy.
func NewAggregator(rubric policy.Rubric, strategy Strategy) (agg *Aggregator) {
	agg = &Aggregator{
		rubric:   rubric,
		strategy: strategy,
	}
	return agg
}

// ScorePaper scores every criterion for one paper in rubric order and
// sums the total. Manual overrides replace computed scores: a
// per-criterion override is clamped into [0, weight] and bypasses the
// strategy entirely, and a total override replaces the sum verbatim.
func (a *Aggregator) ScorePaper(paper evidence.Paper) (row Row) {
	row.PaperID = paper.ID
	row.Title = paper.Title
	row.Link = paper.Link
	row.Scores = make(map[string]int, len(a.rubric.Criteria))

	for _, criterion := range a.rubric.Criteria {
		rec := paper.Evidence[criterion.ID]

		var score int
		var reason string
		if override, ok := paper.ScoreOverrides[criterion.ID]; ok {
			score = clampInt(override, 0, criterion.Weight)
			reason = fmt.Sprintf("Manual override = %d", score)
		} else {
			score, reason = a.strategy.Score(criterion.Weight, rec)
		}

		row.Scores[criterion.ID] = score
		row.Total += score
		row.Details = append(row.Details, CriterionResult{
			CriterionID: criterion.ID,
			Name:        criterion.Name,
			Score:       score,
			Weight:      criterion.Weight,
			Reason:      reason,
			Quotes:      rec.Quotes,
			Notes:       rec.AssessorNotes,
		})
	}

	if paper.TotalOverride != nil {
		row.Total = *paper.TotalOverride
	}

	return row
}
