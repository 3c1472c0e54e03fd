package report

import (
	"fmt"
	"strings"

	"github.com/arnvik/paperscore/pkg/scorer"
)

// maxQuotesShown bounds the evidence pointers printed per criterion.
const maxQuotesShown = 8

// Markdown renders the per-paper report.
func Markdown(row scorer.Row) (text string) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", row.PaperID)
	fmt.Fprintf(&b, "Title: %s\n", row.Title)
	fmt.Fprintf(&b, "Link:  %s\n", row.Link)
	b.WriteString("\n")

	for _, detail := range row.Details {
		fmt.Fprintf(&b, "## %s\n", detail.Name)
		fmt.Fprintf(&b, "- Score: %d / %d  (%s)\n", detail.Score, detail.Weight, detail.Reason)

		quotes := detail.Quotes
		if len(quotes) > maxQuotesShown {
			quotes = quotes[:maxQuotesShown]
		}
		if len(quotes) > 0 {
			b.WriteString("- Evidence pointers:\n")
			for _, quote := range quotes {
				fmt.Fprintf(&b, "  - %s\n", quote)
			}
		}

		if detail.Notes != "" {
			fmt.Fprintf(&b, "- Notes: %s\n", detail.Notes)
		}
		b.WriteString("\n")
	}

	text = b.String()
	return text
}
