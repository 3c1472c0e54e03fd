package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arnvik/paperscore/pkg/config"
	"github.com/arnvik/paperscore/pkg/evidence"
	"github.com/arnvik/paperscore/pkg/policy"
	"github.com/arnvik/paperscore/pkg/ranker"
	"github.com/arnvik/paperscore/pkg/report"
	"github.com/arnvik/paperscore/pkg/scorer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scorePapersDir string

//nolint:gochecknoglobals // Cobra boilerplate
var scorePolicy string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreStrategy string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreTopK int

//nolint:gochecknoglobals // Cobra boilerplate
var scorePDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score all papers and write reports",
	Long: `Scores every paper JSON record found in the papers directory against the
active rubric and writes:

- results/reports/<paper_id>.md  per-paper report
- results/scores.csv             one row per paper, one column per criterion
- results/scores.json            machine-readable score rows
- results/summary.md             run summary with top-K ranking

Malformed paper files are skipped and counted; an invalid policy falls back
to the built-in rubric. The run fails only when no paper files are found.

Examples:
  # Score with the defaults (data/papers_json, policy/checklist.json)
  paperscore score

  # Score with the extended confidence-weighted strategy
  paperscore score --strategy extended

  # Score a different corpus and keep the top 10
  paperscore score --papers ./corpus --top-k 10`,
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scorePapersDir, "papers", "", "Directory of paper JSON records")
	scoreCmd.Flags().StringVar(&scorePolicy, "policy", "", "Policy file path or URL")
	scoreCmd.Flags().StringVar(&scoreOutputDir, "output-dir", "", "Directory for results")
	scoreCmd.Flags().StringVar(&scoreStrategy, "strategy", "", "Scoring strategy: basic or extended")
	scoreCmd.Flags().IntVar(&scoreTopK, "top-k", 0, "Ranking size in the summary")
	scoreCmd.Flags().BoolVar(&scorePDF, "pdf", false, "Also render the summary to PDF via pandoc")
}

func runScore(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	applyScoreFlags(&cfg)
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return err
	}

	rubric := policy.Load(cfg.PolicyPath)

	var strategy scorer.Strategy
	switch cfg.Strategy {
	case config.StrategyExtended:
		strategy = scorer.NewExtended()
	default:
		strategy = scorer.NewBasic(rubric.AllowPartialScoring, rubric.PartialRatio)
	}

	var papers []evidence.Paper
	var skipped int
	papers, skipped, err = evidence.LoadDir(cfg.PapersDir)
	if err != nil {
		return err
	}

	if len(papers) == 0 {
		err = errors.Errorf("no paper JSON files found in %s", cfg.PapersDir)
		return err
	}

	reportsDir := cfg.ReportsPath()
	err = os.MkdirAll(reportsDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create reports directory: %s", reportsDir)
		return err
	}

	if getVerbose() {
		fmt.Printf("Scoring %d paper(s) with the %s strategy...\n", len(papers), strategy.Name())
	}

	agg := scorer.NewAggregator(rubric, strategy)
	rows := make([]scorer.Row, 0, len(papers))

	for _, paper := range papers {
		row := agg.ScorePaper(paper)
		rows = append(rows, row)

		if getVerbose() {
			fmt.Printf("%s: %d\n", row.PaperID, row.Total)
			for _, detail := range row.Details {
				fmt.Printf("  %s: %d/%d (%s)\n", detail.CriterionID, detail.Score, detail.Weight, detail.Reason)
			}
		}

		reportPath := filepath.Join(reportsDir, row.PaperID+".md")
		writeErr := os.WriteFile(reportPath, []byte(report.Markdown(row)), 0644)
		if writeErr != nil {
			fmt.Fprintf(os.Stderr, "[WARN] Failed to write report %q: %v\n", reportPath, writeErr)
		}
	}

	csvPath := filepath.Join(cfg.OutputDir, "scores.csv")
	csvErr := report.WriteCSV(csvPath, rubric.Criteria, rows)
	if csvErr != nil {
		fmt.Fprintf(os.Stderr, "[WARN] %v\n", csvErr)
	}

	jsonPath := filepath.Join(cfg.OutputDir, "scores.json")
	jsonErr := report.WriteJSON(jsonPath, rows)
	if jsonErr != nil {
		fmt.Fprintf(os.Stderr, "[WARN] %v\n", jsonErr)
	}

	top := ranker.Top(ranker.Rank(rows), cfg.TopK)
	summaryPath := filepath.Join(cfg.OutputDir, "summary.md")
	summaryErr := os.WriteFile(summaryPath, []byte(report.Summary(len(rows), skipped, top, strategy.Name())), 0644)
	if summaryErr != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to write summary %q: %v\n", summaryPath, summaryErr)
	}

	if scorePDF {
		pdfPath := filepath.Join(cfg.OutputDir, "summary.pdf")
		err = report.RenderPDF(summaryPath, pdfPath)
		if err != nil {
			err = errors.Wrap(err, "failed to render summary PDF")
			return err
		}
	}

	fmt.Printf("Done. Wrote %s, %s and %d reports to %s\n", csvPath, summaryPath, len(rows), reportsDir)
	if skipped > 0 {
		fmt.Printf("Skipped %d malformed JSON file(s).\n", skipped)
	}

	return err
}

// applyScoreFlags overrides configuration fields from command-line flags.
func applyScoreFlags(cfg *config.Config) {
	if scorePapersDir != "" {
		cfg.PapersDir = scorePapersDir
	}
	if scorePolicy != "" {
		cfg.PolicyPath = scorePolicy
	}
	if scoreOutputDir != "" {
		cfg.OutputDir = scoreOutputDir
	}
	if scoreStrategy != "" {
		cfg.Strategy = scoreStrategy
	}
	if scoreTopK > 0 {
		cfg.TopK = scoreTopK
	}
}
