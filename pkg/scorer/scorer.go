package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/arnvik/paperscore/pkg/evidence"
)

// Strategy turns one criterion's evidence record into a bounded score.
// Implementations must keep the result within [0, weight]. A run selects
// exactly one strategy and applies it to every criterion of every paper,
// so scores stay comparable across a document.
type Strategy interface {
	Name() string
	Score(weight int, rec evidence.Record) (score int, reason string)
}

// Basic scores on evidence presence alone, with optional partial credit
// when a record carries implicit signals.
type Basic struct {
	AllowPartial bool
	PartialRatio float64
}

// NewBasic creates a Basic strategy from the rubric's partial-scoring
// settings. The ratio is clamped into [0, 1].
func NewBasic(allowPartial bool, partialRatio float64) (strategy *Basic) {
	strategy = &Basic{
		AllowPartial: allowPartial,
		PartialRatio: clampFloat(partialRatio, 0, 1),
	}
	return strategy
}

// Name returns the strategy identifier.
func (b *Basic) Name() (name string) {
	name = "basic"
	return name
}

// Score awards full weight for explicit evidence, a ratio of the weight
// for implicit evidence when partial scoring is allowed, and zero
// otherwise.
func (b *Basic) Score(weight int, rec evidence.Record) (score int, reason string) {
	if rec.Present {
		score = weight
		reason = "Explicit evidence, full weight"
		return score, reason
	}

	if b.AllowPartial && hasImplicitEvidence(rec) {
		score = clampInt(roundHalfUp(float64(weight)*b.PartialRatio), 0, weight)
		reason = fmt.Sprintf("Implicit/weak evidence at %d%% weight", int(b.PartialRatio*100))
		return score, reason
	}

	score = 0
	reason = "No evidence"
	return score, reason
}

// hasImplicitEvidence reports whether a record that lacks explicit presence
// still carries implicit signals: any normalized quote, or assessor notes
// of at least ten characters after trimming.
func hasImplicitEvidence(rec evidence.Record) (implicit bool) {
	if rec.Present {
		return implicit
	}
	implicit = len(rec.Quotes) > 0 || len(strings.TrimSpace(rec.AssessorNotes)) >= 10
	return implicit
}

// Extended weighs confidence, quote quality, notes quality, quote count,
// and evidence-type tags into a single multiplier capped at 1.0. It
// ignores the partial-ratio mechanism entirely.
type Extended struct {
	Bonuses map[string]float64
}

// NewExtended creates an Extended strategy with the standard evidence-type
// bonus table.
func NewExtended() (strategy *Extended) {
	strategy = &Extended{Bonuses: TypeBonuses}
	return strategy
}

// Name returns the strategy identifier.
func (e *Extended) Name() (name string) {
	name = "extended"
	return name
}

// Score computes a confidence-weighted score. A structurally absent record
// or a non-positive confidence short-circuits to zero.
func (e *Extended) Score(weight int, rec evidence.Record) (score int, reason string) {
	if !rec.Structured {
		score = 0
		reason = "No evidence record"
		return score, reason
	}

	if rec.PresentConfidence <= 0 {
		score = 0
		reason = "No stated confidence"
		return score, reason
	}

	multiplier := e.multiplier(rec)
	score = clampInt(roundHalfUp(float64(weight)*multiplier), 0, weight)
	reason = fmt.Sprintf("Confidence-weighted evidence, multiplier %.2f", multiplier)
	return score, reason
}

// multiplier composes the extended-mode signal blend: confidence scaled by
// average quote quality, plus a notes-quality term, plus a capped
// quote-count bonus, the sum scaled by the evidence-type factor and capped
// at 1.0.
func (e *Extended) multiplier(rec evidence.Record) (m float64) {
	avgQuality := 0.0
	if len(rec.QuoteQuality) > 0 {
		sum := 0.0
		for _, rating := range rec.QuoteQuality {
			sum += rating
		}
		avgQuality = sum / float64(len(rec.QuoteQuality))
	}

	m = rec.PresentConfidence * (avgQuality / 5.0)
	m += float64(rec.NotesQuality) / 10.0

	quoteBonus := 0.05 * float64(len(rec.Quotes))
	if quoteBonus > 0.25 {
		quoteBonus = 0.25
	}
	m += quoteBonus

	factor := 1.0
	for _, tag := range rec.EvidenceTypes {
		factor += e.Bonuses[tag]
	}
	m *= factor

	if m > 1.0 {
		m = 1.0
	}

	return m
}

// roundHalfUp rounds half away from zero, which is round-half-up for the
// non-negative products produced here. 7.5 rounds to 8, not 7.
func roundHalfUp(x float64) (n int) {
	n = int(math.Round(x))
	return n
}

func clampInt(n, lo, hi int) (clamped int) {
	clamped = n
	if clamped < lo {
		clamped = lo
	}
	if clamped > hi {
		clamped = hi
	}
	return clamped
}

func clampFloat(f, lo, hi float64) (clamped float64) {
	clamped = f
	if clamped < lo {
		clamped = lo
	}
	if clamped > hi {
		clamped = hi
	}
	return clamped
}
