package evidence

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Paper is one document's evidence submission: its identity, the evidence
// bag per criterion, and any manual scoring overrides.
type Paper struct {
	ID             string
	Title          string
	Link           string
	Evidence       map[string]Record
	ScoreOverrides map[string]int
	TotalOverride  *int
}

// ParsePaper decodes a raw paper record. fallbackID is used when the record
// carries no paper_id, typically the source filename without extension.
//
// Only structural problems are errors; field-level problems degrade: an
// override that cannot be coerced to an integer scores as zero, and a total
// override that cannot be coerced is dropped so the computed sum stands.
func ParsePaper(data []byte, fallbackID string) (paper Paper, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("not valid JSON")
		return paper, err
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		err = errors.New("paper record is not a JSON object")
		return paper, err
	}

	paper.ID = root.Get("paper_id").String()
	if paper.ID == "" {
		paper.ID = fallbackID
	}
	paper.Title = root.Get("metadata.title").String()
	paper.Link = root.Get("metadata.link").String()

	paper.Evidence = map[string]Record{}
	if ev := root.Get("evidence"); ev.IsObject() {
		ev.ForEach(func(key, value gjson.Result) bool {
			paper.Evidence[key.String()] = parseRecord(value)
			return true
		})
	}

	paper.ScoreOverrides = map[string]int{}
	if over := root.Get("scoring.score_override"); over.IsObject() {
		over.ForEach(func(key, value gjson.Result) bool {
			if value.Type == gjson.Null {
				return true
			}
			score, castErr := cast.ToIntE(value.Value())
			if castErr != nil {
				score = 0
			}
			paper.ScoreOverrides[key.String()] = score
			return true
		})
	}

	if t := root.Get("scoring.total_score_manual_override"); t.Exists() && t.Type != gjson.Null {
		total, castErr := cast.ToIntE(t.Value())
		if castErr == nil {
			paper.TotalOverride = &total
		}
	}

	return paper, err
}
