package report

import (
	"encoding/json"
	"os"

	"github.com/arnvik/paperscore/pkg/scorer"
	"github.com/pkg/errors"
)

// WriteJSON writes the scored rows as machine-readable JSON for
// downstream tooling.
func WriteJSON(path string, rows []scorer.Row) (err error) {
	var data []byte
	data, err = json.MarshalIndent(rows, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal score rows")
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write scores file: %s", path)
		return err
	}

	return err
}
