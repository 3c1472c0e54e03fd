package report

import (
	"fmt"
	"strings"

	"github.com/arnvik/paperscore/pkg/ranker"
)

// Summary renders the run-level summary markdown: how many papers were
// scored, how many inputs were skipped as malformed, and the top entries
// of the ranking.
func Summary(scored, skipped int, top []ranker.Entry, strategy string) (text string) {
	var b strings.Builder

	b.WriteString("# Summary\n\n")
	fmt.Fprintf(&b, "Total papers scored: %d\n\n", scored)
	if skipped > 0 {
		fmt.Fprintf(&b, "Skipped malformed JSON files: %d\n\n", skipped)
	}

	fmt.Fprintf(&b, "## Top %d by total score\n", len(top))
	for i, entry := range top {
		fmt.Fprintf(&b, "%d. %s - %d\n", i+1, entry.PaperID, entry.Total)
	}

	b.WriteString("\n## Notes\n")
	fmt.Fprintf(&b, "- Scoring strategy: %s\n", strategy)
	b.WriteString("- Use score_override fields for manual adjustments when necessary.\n")

	text = b.String()
	return text
}
