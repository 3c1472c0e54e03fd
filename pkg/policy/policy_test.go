package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRubric(t *testing.T) {
	rubric := DefaultRubric()

	if len(rubric.Criteria) != 7 {
		t.Fatalf("Expected 7 criteria, got %d", len(rubric.Criteria))
	}

	sum := 0
	for _, criterion := range rubric.Criteria {
		sum += criterion.Weight
	}
	if sum != 100 {
		t.Errorf("Expected weights to sum to 100, got %d", sum)
	}

	if !rubric.AllowPartialScoring {
		t.Error("Expected partial scoring allowed by default")
	}
	if rubric.PartialRatio != 0.5 {
		t.Errorf("Expected partial ratio 0.5, got %v", rubric.PartialRatio)
	}
}

func TestParseValid(t *testing.T) {
	data := []byte(`{
		"criteria": [
			{"id": "privacy", "name": "Privacy", "weight": 60},
			{"id": "oversight", "weight": "40"}
		],
		"allow_partial_scoring": false,
		"partial_ratio": 0.25
	}`)

	rubric, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse valid policy: %v", err)
	}

	if len(rubric.Criteria) != 2 {
		t.Fatalf("Expected 2 criteria, got %d", len(rubric.Criteria))
	}
	if rubric.Criteria[0].ID != "privacy" || rubric.Criteria[0].Weight != 60 {
		t.Errorf("Unexpected first criterion: %+v", rubric.Criteria[0])
	}

	// A numeric-string weight coerces.
	if rubric.Criteria[1].Weight != 40 {
		t.Errorf("Expected coerced weight 40, got %d", rubric.Criteria[1].Weight)
	}

	// A missing name derives from the id.
	if rubric.Criteria[1].Name != "Oversight" {
		t.Errorf("Expected derived name Oversight, got %q", rubric.Criteria[1].Name)
	}

	if rubric.AllowPartialScoring {
		t.Error("Expected partial scoring disabled")
	}
	if rubric.PartialRatio != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", rubric.PartialRatio)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not JSON",
			data: `{not json`,
		},
		{
			name: "not an object",
			data: `[1, 2, 3]`,
		},
		{
			name: "missing criteria",
			data: `{"allow_partial_scoring": true}`,
		},
		{
			name: "empty criteria list",
			data: `{"criteria": []}`,
		},
		{
			name: "duplicate id",
			data: `{"criteria": [{"id": "a", "weight": 1}, {"id": "a", "weight": 2}]}`,
		},
		{
			name: "empty id",
			data: `{"criteria": [{"id": "", "weight": 1}]}`,
		},
		{
			name: "negative weight",
			data: `{"criteria": [{"id": "a", "weight": -5}]}`,
		},
		{
			name: "non-numeric weight",
			data: `{"criteria": [{"id": "a", "weight": "heavy"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseDefaultsPartialSettings(t *testing.T) {
	data := []byte(`{"criteria": [{"id": "a", "weight": 10}]}`)

	rubric, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if !rubric.AllowPartialScoring {
		t.Error("Expected partial scoring to default to true")
	}
	if rubric.PartialRatio != 0.5 {
		t.Errorf("Expected ratio to default to 0.5, got %v", rubric.PartialRatio)
	}
}

func TestParseClampsPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		data string
		want float64
	}{
		{
			name: "ratio above one",
			data: `{"criteria": [{"id": "a", "weight": 1}], "partial_ratio": 1.5}`,
			want: 1.0,
		},
		{
			name: "negative ratio",
			data: `{"criteria": [{"id": "a", "weight": 1}], "partial_ratio": -0.5}`,
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rubric, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if rubric.PartialRatio != tt.want {
				t.Errorf("Expected ratio %v, got %v", tt.want, rubric.PartialRatio)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	rubric := Load(filepath.Join(t.TempDir(), "nope.json"))

	if len(rubric.Criteria) != 7 {
		t.Errorf("Expected default rubric for missing file, got %d criteria", len(rubric.Criteria))
	}
}

func TestLoadInvalidPolicyFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "checklist.json")

	// Duplicate ids invalidate the whole policy.
	data := []byte(`{"criteria": [{"id": "a", "weight": 1}, {"id": "a", "weight": 2}]}`)
	err := os.WriteFile(path, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write policy: %v", err)
	}

	rubric := Load(path)

	if len(rubric.Criteria) != 7 {
		t.Errorf("Expected fallback to default rubric, got %d criteria", len(rubric.Criteria))
	}
}

func TestLoadValidPolicy(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "checklist.json")

	data := []byte(`{"criteria": [{"id": "privacy", "weight": 100}], "partial_ratio": 0.3}`)
	err := os.WriteFile(path, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write policy: %v", err)
	}

	rubric := Load(path)

	if len(rubric.Criteria) != 1 {
		t.Fatalf("Expected custom rubric, got %d criteria", len(rubric.Criteria))
	}
	if rubric.PartialRatio != 0.3 {
		t.Errorf("Expected ratio 0.3, got %v", rubric.PartialRatio)
	}
}

func TestDisplayName(t *testing.T) {
	got := displayName("real_time_transparency")
	if got != "Real Time Transparency" {
		t.Errorf("Expected Real Time Transparency, got %q", got)
	}
}
