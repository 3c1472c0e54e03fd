package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "paperscore",
	Short: "Score paper evidence against a weighted rubric",
	Long: `paperscore reads a directory of per-paper evidence records, scores each
paper against a weighted rubric of evidence-based criteria, and writes
per-paper markdown reports, a scores CSV, and a ranked run summary.

Scoring trusts the assessor-supplied evidence fields verbatim; it performs
no text analysis of its own. An optional policy JSON replaces the built-in
rubric; an invalid policy falls back to the default with a warning.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (JSON, optional)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
