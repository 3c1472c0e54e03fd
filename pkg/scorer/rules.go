package scorer

// TypeBonuses maps evidence-type tags to the additive bonus they
// contribute to the extended-mode type factor. Bonuses are independent
// and stack when multiple tags are present. New tags can be added here
// without touching the scoring formula.
//
//nolint:gochecknoglobals // Scoring configuration constants
var TypeBonuses = map[string]float64{
	"Empirical Data":  0.20,
	"Case Study":      0.15,
	"Normative Claim": 0.10,
}
