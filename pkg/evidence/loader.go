package evidence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LoadDir scans dir for *.json paper records in lexical filename order.
// Malformed files are warned about, counted, and skipped: one bad record
// must not sink the run. Finding zero files is not an error here; the
// caller decides whether an empty input set is fatal.
func LoadDir(dir string) (papers []Paper, skipped int, err error) {
	var paths []string
	paths, err = filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		err = errors.Wrapf(err, "failed to scan papers directory: %s", dir)
		return papers, skipped, err
	}

	for _, path := range paths {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "[WARN] Skipping %q: %v\n", path, readErr)
			skipped++
			continue
		}

		fallbackID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		paper, parseErr := ParsePaper(data, fallbackID)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "[WARN] Skipping %q: %v\n", path, parseErr)
			skipped++
			continue
		}

		papers = append(papers, paper)
	}

	return papers, skipped, err
}
