package quiz

import (
	"math"
	"sort"
	"strings"

	"persona-matcher/internal/domain"
)

// dominantTraitCount is how many top traits make up a personality.
const dominantTraitCount = 4

// flatTraitWeight is the contribution of a single-tag answer when the bank
// question carries no weight vector.
const flatTraitWeight = 70

// scoreSession turns a finished session into a personality summary.
func scoreSession(session domain.QuizSession, bank []domain.QuizQuestion) domain.QuizResult {
	sums := make(map[string]int)
	counts := make(map[string]int)

	for i, trait := range session.SelectedTraits {
		weights := answerWeights(bank, session.AskedQuestions, i, trait)
		for t, w := range weights {
			sums[t] += w
			counts[t]++
		}
	}

	// Normalize by contributing-question count so traits asked about often
	// are not automatically favored over traits asked about rarely.
	scores := make(map[string]int, len(sums))
	for t, sum := range sums {
		scores[t] = sum / counts[t]
	}

	dominant := dominantTraits(scores, dominantTraitCount)

	return domain.QuizResult{
		PersonalityLabel: personalityLabel(dominant, scores),
		Confidence:       resultConfidence(session.SelectedTraits, dominant),
		DominantTraits:   dominant,
		TraitScores:      scores,
		ProductType:      session.ProductType,
	}
}

// answerWeights resolves the weight vector of turn i: the option the user
// picked on the question asked that turn. Falls back to a flat single-trait
// contribution when the question or option cannot be matched (simple-tag
// banks, or a bank edit mid-session).
func answerWeights(bank []domain.QuizQuestion, asked []string, turn int, trait string) map[string]int {
	if turn < len(asked) {
		for _, q := range bank {
			if q.Text != asked[turn] {
				continue
			}
			for _, opt := range q.Options {
				if opt.Trait == trait && len(opt.Weights) > 0 {
					return opt.Weights
				}
			}
		}
	}
	return map[string]int{trait: flatTraitWeight}
}

// dominantTraits returns the top-k traits by normalized score, ties broken
// alphabetically for determinism.
func dominantTraits(scores map[string]int, k int) []string {
	traits := make([]string, 0, len(scores))
	for t := range scores {
		traits = append(traits, t)
	}
	sort.Slice(traits, func(i, j int) bool {
		if scores[traits[i]] != scores[traits[j]] {
			return scores[traits[i]] > scores[traits[j]]
		}
		return traits[i] < traits[j]
	})
	if len(traits) > k {
		traits = traits[:k]
	}
	return traits
}

// personalityLabels is the curated table, keyed by the sorted top-3 traits.
var personalityLabels = map[string]string{
	"adventure+boldness+confidence":       "The Trailblazer",
	"boldness+confidence+edginess":        "The Maverick",
	"elegance+romance+sophistication":     "The Classic Romantic",
	"elegance+sophistication+tradition":   "The Timeless Curator",
	"creativity+playfulness+whimsy":       "The Free Spirit",
	"adventure+freedom+whimsy":            "The Wanderer",
	"minimalism+sophistication+tradition": "The Quiet Perfectionist",
	"playfulness+warmth+whimsy":           "The Sunshine",
	"creativity+edginess+freedom":         "The Original",
	"romance+warmth+whimsy":               "The Dreamer",
}

// traitAdjectives feed the generated fallback label.
var traitAdjectives = map[string]string{
	domain.TraitBoldness: "Bold",
	domain.TraitElegance: "Elegant",
	domain.TraitWhimsy:   "Whimsical",
	TraitAdventure:       "Adventurous",
	TraitMinimalism:      "Understated",
	TraitRomance:         "Romantic",
	TraitPlayfulness:     "Playful",
	TraitSophistication:  "Refined",
	TraitCreativity:      "Creative",
	TraitTradition:       "Classic",
	TraitEdginess:        "Edgy",
	TraitFreedom:         "Free-Spirited",
	TraitWarmth:          "Warm",
	TraitConfidence:      "Confident",
}

// personalityLabel looks up the curated name for the top-trait combination
// and generates "The {Adj} {Adj}" when no curated label exists.
func personalityLabel(dominant []string, scores map[string]int) string {
	if len(dominant) == 0 {
		return "The Undecided"
	}

	top := dominant
	if len(top) > 3 {
		top = top[:3]
	}
	key := make([]string, len(top))
	copy(key, top)
	sort.Strings(key)
	if label, ok := personalityLabels[strings.Join(key, "+")]; ok {
		return label
	}

	first := adjective(dominant[0])
	if len(dominant) == 1 {
		return "The " + first
	}
	return "The " + first + " " + adjective(dominant[1])
}

func adjective(trait string) string {
	if adj, ok := traitAdjectives[trait]; ok {
		return adj
	}
	if trait == "" {
		return "Singular"
	}
	return strings.ToUpper(trait[:1]) + trait[1:]
}

// resultConfidence blends dominant-trait agreement with answer volume:
// answers that kept choosing the eventually-dominant trait raise it, more
// answers raise it with diminishing returns. Capped at 95.
func resultConfidence(selected []string, dominant []string) int {
	if len(selected) == 0 || len(dominant) == 0 {
		return 0
	}
	agreeing := 0
	for _, trait := range selected {
		if trait == dominant[0] {
			agreeing++
		}
	}
	agreement := float64(agreeing) / float64(len(selected))
	n := float64(len(selected))
	volume := 15 * n / (n + 4)

	confidence := int(math.Round(50 + 30*agreement + volume))
	if confidence > 95 {
		confidence = 95
	}
	return confidence
}
