package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arnvik/paperscore/pkg/policy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initPolicyCmd = &cobra.Command{
	Use:   "init-policy [path]",
	Short: "Write the default rubric to a policy file",
	Long: `Writes the built-in rubric to a JSON policy file as a starting point for
customization. Edit the criteria, weights, and partial-scoring settings,
then point 'paperscore score' at the file with --policy.

Defaults to policy/checklist.json when no path is given.`,
	RunE: runInitPolicy,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initPolicyCmd)
}

func runInitPolicy(cmd *cobra.Command, args []string) (err error) {
	path := "policy/checklist.json"
	if len(args) > 0 {
		path = args[0]
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("policy file already exists: %s", path)
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create policy directory: %s", dir)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(policy.DefaultRubric(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default rubric")
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write policy file: %s", path)
		return err
	}

	fmt.Printf("Wrote default policy to %s\n", path)
	return err
}
