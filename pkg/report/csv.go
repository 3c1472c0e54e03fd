package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/arnvik/paperscore/pkg/policy"
	"github.com/arnvik/paperscore/pkg/scorer"
	"github.com/pkg/errors"
)

// WriteCSV writes one row per paper: paper id, one column per criterion
// id in rubric order, then the total score.
func WriteCSV(path string, criteria []policy.Criterion, rows []scorer.Row) (err error) {
	var f *os.File
	f, err = os.Create(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to create CSV file: %s", path)
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)

	header := []string{"paper_id"}
	for _, criterion := range criteria {
		header = append(header, criterion.ID)
	}
	header = append(header, "total_score")

	err = w.Write(header)
	if err != nil {
		err = errors.Wrapf(err, "failed to write CSV header: %s", path)
		return err
	}

	for _, row := range rows {
		record := []string{row.PaperID}
		for _, criterion := range criteria {
			record = append(record, strconv.Itoa(row.Scores[criterion.ID]))
		}
		record = append(record, strconv.Itoa(row.Total))

		err = w.Write(record)
		if err != nil {
			err = errors.Wrapf(err, "failed to write CSV row for %s", row.PaperID)
			return err
		}
	}

	w.Flush()
	err = w.Error()
	if err != nil {
		err = errors.Wrapf(err, "failed to flush CSV file: %s", path)
		return err
	}

	return err
}
