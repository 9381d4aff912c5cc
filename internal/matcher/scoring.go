package matcher

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"persona-matcher/internal/domain"
)

// Weights is the percentage split between the four sub-scores. Treated as
// configuration data so variants are expressible without duplicating the
// scoring code.
type Weights struct {
	Theme       float64
	BagType     float64
	Personality float64
	Sentiment   float64
}

// DefaultWeights is the primary split: theme-led ranking.
var DefaultWeights = Weights{Theme: 40, BagType: 30, Personality: 20, Sentiment: 10}

// PersonalityHeavyWeights is the theme-flexible variant used when the quiz
// result, not the declared theme, should dominate.
var PersonalityHeavyWeights = Weights{Theme: 30, BagType: 20, Personality: 40, Sentiment: 10}

// Config parametrizes a matcher. The zero value is not usable; call
// DefaultConfig.
type Config struct {
	Weights Weights
	// FuzzyThemes switches theme matching from strict category equality
	// (mismatches filtered out) to keyword-based scoring (mismatches kept
	// with a reduced theme sub-score).
	FuzzyThemes bool
	Limit       int
}

// DefaultConfig returns strict theme matching with the 40/30/20/10 split and
// a 12-item result cap.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights, Limit: 12}
}

// sentimentPreferences maps each sentiment label to the bag types it favors.
var sentimentPreferences = map[string][]string{
	domain.SentimentPositive: {"crossbody", "satchel"},
	domain.SentimentBalanced: {"satchel", "crossbody", "pouch"},
	domain.SentimentNegative: {"pouch", "wallet", "satchel"},
}

const (
	neutralSubScore        = 50
	sentimentMismatchScore = 40
	confidenceFloor        = 85
	confidenceCeiling      = 95
)

// Recommend ranks the catalog against the profile and returns a bounded,
// deduplicated, explained result set. Pure function of its inputs: the
// catalog is never mutated and repeated calls return identical output.
func Recommend(catalog domain.Catalog, profile domain.UserProfile, cfg Config) (domain.RecommendationResult, error) {
	if cfg.Limit <= 0 {
		cfg.Limit = 12
	}
	if !KnownTheme(profile.Theme) {
		return domain.RecommendationResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownTheme, profile.Theme)
	}

	scored := scoreCatalog(catalog, profile, cfg)
	if len(scored) == 0 {
		return domain.RecommendationResult{}, fmt.Errorf("%w for theme %q", domain.ErrNoMatches, profile.Theme)
	}

	// Stable sort keeps catalog order as the tie-break, which makes ranking
	// deterministic for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	final := dedupeByArtwork(scored, cfg.Limit)
	confidence := clampConfidence(averageScore(final))

	suggested := strings.ToLower(profile.BagType)
	if suggested == "" {
		suggested = DetectBagType(final[0].Product.ProductName)
	}

	recs := make([]domain.Recommendation, 0, len(final))
	total := 0
	for _, sp := range final {
		total += sp.Score
		recs = append(recs, domain.Recommendation{
			ArtworkName:     sp.Product.ArtworkName,
			ProductName:     sp.Product.ProductName,
			ProductType:     DetectBagType(sp.Product.ProductName),
			Price:           sp.Product.Price,
			ImageURL:        sp.Product.ImageURL,
			ProductURL:      sp.Product.ProductURL,
			MatchScore:      sp.Score,
			ConfidenceLabel: ConfidenceLabel(sp.Score),
			Reasons:         sp.Reasons,
		})
	}
	avg := total / len(final)

	return domain.RecommendationResult{
		SuggestedBagType: suggested,
		Confidence:       confidence,
		AlternativeTypes: FamilyAlternatives(suggested),
		Recommendations:  recs,
		Summary: domain.RecommendationSummary{
			TotalProducts:     len(recs),
			AverageMatchScore: avg,
			ConfidenceLevel:   ConfidenceLabel(confidence),
		},
	}, nil
}

// scoreCatalog computes the weighted score for every qualifying product,
// collapsing exact (artwork, product name) duplicates first-wins.
func scoreCatalog(catalog domain.Catalog, profile domain.UserProfile, cfg Config) []domain.ScoredProduct {
	seen := make(map[string]struct{}, len(catalog))
	scored := make([]domain.ScoredProduct, 0, len(catalog))

	for _, p := range catalog {
		key := strings.ToLower(p.ArtworkName) + "|" + strings.ToLower(p.ProductName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		themeScore, ok := themeSubScore(p, profile.Theme, cfg.FuzzyThemes)
		if !ok {
			continue
		}

		bagScore := bagTypeScore(p.ProductName, profile.BagType)
		persScore, persSim := personalitySubScore(profile)
		sentScore := sentimentSubScore(p, profile.Sentiment)

		w := cfg.Weights
		combined := (w.Theme*float64(themeScore) +
			w.BagType*float64(bagScore) +
			w.Personality*float64(persScore) +
			w.Sentiment*float64(sentScore)) / 100
		score := clampScore(int(math.Round(combined)))

		scored = append(scored, domain.ScoredProduct{
			Product: p,
			Score:   score,
			Reasons: buildReasons(p, profile, themeScore, bagScore, persSim),
		})
	}
	return scored
}

// themeSubScore applies the configured theme policy. In strict mode a
// category mismatch disqualifies the product entirely; in fuzzy mode it is
// kept with a keyword-derived score. Either way a correctly-themed product
// can never be outranked by a mismatched one at equal remaining sub-scores.
func themeSubScore(p domain.Product, theme string, fuzzy bool) (int, bool) {
	if fuzzy {
		return fuzzyThemeScore(p, theme), true
	}
	if strings.EqualFold(p.Category, canonicalTheme(theme)) {
		return 100, true
	}
	if canonicalTheme(theme) == ThemeOther {
		return neutralThemeScore, true
	}
	return 0, false
}

// personalitySubScore turns the cosine similarity between the user's trait
// vector and the theme coefficients into a 0-100 sub-score. Absent scores get
// a neutral default rather than zero. Also returns the raw similarity for the
// explanation text.
func personalitySubScore(profile domain.UserProfile) (int, float64) {
	if !profile.HasPersonality() {
		return neutralSubScore, 0
	}
	user := [3]float64{
		float64(profile.PersonalityScores[domain.TraitBoldness]) / 100,
		float64(profile.PersonalityScores[domain.TraitElegance]) / 100,
		float64(profile.PersonalityScores[domain.TraitWhimsy]) / 100,
	}
	sim := cosineSimilarity(user, ThemeCoefficients(profile.Theme))
	return clampScore(int(math.Round(sim * 100))), sim
}

func sentimentSubScore(p domain.Product, sentiment string) int {
	prefs, ok := sentimentPreferences[sentiment]
	if !ok {
		return neutralSubScore
	}
	detected := DetectBagType(p.ProductName)
	for _, t := range prefs {
		if t == detected {
			return 100
		}
	}
	return sentimentMismatchScore
}

// cosineSimilarity is the dot product over the product of Euclidean norms.
// A zero vector on either side yields 0 rather than NaN.
func cosineSimilarity(a, b [3]float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// dedupeByArtwork keeps at most one entry per artwork name so a limit-12 list
// shows twelve designs, not twelve sizes of one design. Input must already be
// sorted; first occurrence wins.
func dedupeByArtwork(scored []domain.ScoredProduct, limit int) []domain.ScoredProduct {
	seen := make(map[string]struct{}, limit)
	out := make([]domain.ScoredProduct, 0, limit)
	for _, sp := range scored {
		key := strings.ToLower(sp.Product.ArtworkName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, sp)
		if len(out) == limit {
			break
		}
	}
	return out
}

func buildReasons(p domain.Product, profile domain.UserProfile, themeScore, bagScore int, persSim float64) []string {
	reasons := make([]string, 0, 3)
	if themeScore == 100 {
		reasons = append(reasons, fmt.Sprintf("%s matches your %s theme", p.ArtworkName, profile.Theme))
	} else if themeScore > noHitThemeScore {
		reasons = append(reasons, fmt.Sprintf("%s has motifs related to %s", p.ArtworkName, profile.Theme))
	}
	if bagScore == 100 && profile.BagType != "" {
		reasons = append(reasons, fmt.Sprintf("it is the %s style you asked for", strings.ToLower(profile.BagType)))
	} else if bagScore == bagTypeFamilyScore {
		reasons = append(reasons, fmt.Sprintf("the %s shape carries like a %s", DetectBagType(p.ProductName), strings.ToLower(profile.BagType)))
	}
	if persSim > 0 {
		reasons = append(reasons, fmt.Sprintf("aligned with your personality profile (%d%% similarity)", int(math.Round(persSim*100))))
	}
	return reasons
}

func averageScore(scored []domain.ScoredProduct) int {
	if len(scored) == 0 {
		return 0
	}
	total := 0
	for _, sp := range scored {
		total += sp.Score
	}
	return total / len(scored)
}

// clampConfidence narrows the displayed confidence into [85,95]. The band is
// deliberately tight so the number never reads alarmingly low or suspiciously
// perfect.
func clampConfidence(avg int) int {
	if avg < confidenceFloor {
		return confidenceFloor
	}
	if avg > confidenceCeiling {
		return confidenceCeiling
	}
	return avg
}

// ConfidenceLabel buckets a 0-100 score into the three display levels.
func ConfidenceLabel(score int) string {
	switch {
	case score >= 90:
		return "High"
	case score >= 80:
		return "Medium"
	default:
		return "Low"
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
