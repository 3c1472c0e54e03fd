package policy

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criterion is one weighted entry in a scoring rubric.
type Criterion struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Rubric is the active scoring policy for a run. It is loaded once at
// startup and not modified afterwards. Criterion order is significant:
// it drives report and CSV column order.
type Rubric struct {
	Criteria            []Criterion `json:"criteria"`
	AllowPartialScoring bool        `json:"allow_partial_scoring"`
	PartialRatio        float64     `json:"partial_ratio"`
}

// DefaultRubric returns the built-in rubric used whenever a custom policy
// is absent or invalid. Weights sum to 100.
func DefaultRubric() (rubric Rubric) {
	rubric = Rubric{
		Criteria: []Criterion{
			{ID: "real_time_transparency", Name: "Real-Time Transparency", Weight: 15},
			{ID: "explainability", Name: "Explainability", Weight: 15},
			{ID: "accountability", Name: "Accountability", Weight: 15},
			{ID: "human_oversight", Name: "Human Oversight", Weight: 10},
			{ID: "privacy", Name: "Privacy", Weight: 15},
			{ID: "data_protection", Name: "Data Protection", Weight: 15},
			{ID: "continuous_ethics_monitoring", Name: "Continuous Ethical Monitoring (Lifecycle Governance)", Weight: 15},
		},
		AllowPartialScoring: true,
		PartialRatio:        0.5,
	}
	return rubric
}

// Load resolves the active rubric from source, a local file path or an
// http(s) URL. A missing policy is the normal case and yields the default
// rubric silently; an unreadable or invalid policy yields the default with
// a warning. Load never fails the run.
func Load(source string) (rubric Rubric) {
	rubric = DefaultRubric()

	if source == "" {
		return rubric
	}

	data, fetchErr := fetch(source)
	if fetchErr != nil {
		if os.IsNotExist(errors.Cause(fetchErr)) {
			return rubric
		}
		fmt.Fprintf(os.Stderr, "[WARN] Failed to load policy %q: %v. Using default rubric.\n", source, fetchErr)
		return rubric
	}

	custom, parseErr := Parse(data)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Policy %q invalid: %v. Using default rubric.\n", source, parseErr)
		return rubric
	}

	rubric = custom
	return rubric
}

// Parse decodes and validates a policy description. Any validation failure
// rejects the whole policy: a partially valid criteria list is never
// repaired into a usable rubric.
func Parse(data []byte) (rubric Rubric, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("not valid JSON")
		return rubric, err
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		err = errors.New("policy is not a JSON object")
		return rubric, err
	}

	criteriaVal := root.Get("criteria")
	if !criteriaVal.IsArray() {
		err = errors.New("policy has no criteria list")
		return rubric, err
	}

	var problems []string
	seen := map[string]bool{}

	for i, c := range criteriaVal.Array() {
		id := c.Get("id").String()
		if id == "" {
			problems = append(problems, fmt.Sprintf("criterion %d has an empty id", i))
		} else if seen[id] {
			problems = append(problems, fmt.Sprintf("duplicate criterion id: %s", id))
		}
		seen[id] = true

		weight := 0
		weightVal := c.Get("weight")
		if weightVal.Exists() {
			var castErr error
			weight, castErr = cast.ToIntE(weightVal.Value())
			if castErr != nil {
				problems = append(problems, fmt.Sprintf("non-integer weight for %s: %s", id, weightVal.Raw))
			}
		}
		if weight < 0 {
			problems = append(problems, fmt.Sprintf("negative weight for %s: %d", id, weight))
		}

		name := c.Get("name").String()
		if name == "" {
			name = displayName(id)
		}

		rubric.Criteria = append(rubric.Criteria, Criterion{ID: id, Name: name, Weight: weight})
	}

	if len(rubric.Criteria) == 0 {
		problems = append(problems, "criteria list is empty")
	}

	if len(problems) > 0 {
		err = errors.Errorf("policy validation failed: %s", strings.Join(problems, "; "))
		rubric = Rubric{}
		return rubric, err
	}

	rubric.AllowPartialScoring = true
	if ap := root.Get("allow_partial_scoring"); ap.Exists() {
		rubric.AllowPartialScoring = ap.Bool()
	}

	rubric.PartialRatio = 0.5
	if pr := root.Get("partial_ratio"); pr.Exists() {
		ratio, castErr := cast.ToFloat64E(pr.Value())
		if castErr == nil {
			rubric.PartialRatio = ratio
		}
	}
	if rubric.PartialRatio < 0 {
		rubric.PartialRatio = 0
	}
	if rubric.PartialRatio > 1 {
		rubric.PartialRatio = 1
	}

	return rubric, err
}

// displayName derives a human-readable criterion name from its id.
func displayName(id string) (name string) {
	name = cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
	return name
}
