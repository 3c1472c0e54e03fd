package evidence

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Record is the evidence bag for one (paper, criterion) pair. Every field
// may be absent in the source JSON; absence is a neutral default, never an
// error. Fields are trusted verbatim from the assessor pipeline.
type Record struct {
	// Structured is true when the evidence value was a JSON object. A
	// missing or non-object value leaves a zero Record.
	Structured bool

	// Present is true only when the JSON value is literally true.
	Present bool

	PresentConfidence float64
	Quotes            []string
	AssessorNotes     string
	QuoteQuality      []float64
	NotesQuality      int
	EvidenceTypes     []string
}

// parseRecord reads one evidence value tolerantly. Fields of the wrong
// type degrade to their zero value rather than failing.
func parseRecord(v gjson.Result) (rec Record) {
	if !v.IsObject() {
		return rec
	}

	rec.Structured = true
	rec.Present = v.Get("present").Type == gjson.True
	rec.AssessorNotes = strings.TrimSpace(v.Get("assessor_notes").String())
	rec.Quotes = NormalizeQuotes(v.Get("quotes_or_pointers"))

	if pc := v.Get("present_confidence"); pc.Exists() {
		confidence, castErr := cast.ToFloat64E(pc.Value())
		if castErr == nil {
			rec.PresentConfidence = confidence
		}
	}

	if nq := v.Get("notes_quality"); nq.Exists() {
		quality, castErr := cast.ToIntE(nq.Value())
		if castErr == nil {
			rec.NotesQuality = quality
		}
	}

	if qq := v.Get("quote_quality"); qq.IsArray() {
		for _, item := range qq.Array() {
			rating, castErr := cast.ToFloat64E(item.Value())
			if castErr == nil {
				rec.QuoteQuality = append(rec.QuoteQuality, rating)
			}
		}
	}

	et := v.Get("evidence_type")
	switch {
	case et.IsArray():
		for _, item := range et.Array() {
			if item.Type == gjson.String {
				rec.EvidenceTypes = append(rec.EvidenceTypes, item.String())
			}
		}
	case et.Type == gjson.String:
		rec.EvidenceTypes = []string{et.String()}
	}

	return rec
}

// NormalizeQuotes flattens a quotes_or_pointers value into a string list.
// Arrays keep their string and number elements; a bare string or number is
// wrapped into a one-element list; everything else normalizes to empty.
func NormalizeQuotes(v gjson.Result) (quotes []string) {
	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			if item.Type == gjson.String || item.Type == gjson.Number {
				quotes = append(quotes, item.String())
			}
		}
	case v.Type == gjson.String || v.Type == gjson.Number:
		quotes = []string{v.String()}
	}
	return quotes
}
