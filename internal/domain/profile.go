package domain

const (
	SentimentPositive = "Positive"
	SentimentBalanced = "Balanced"
	SentimentNegative = "Negative"
)

// Core style axes used by the per-theme coefficient vectors. Quiz variants may
// score a larger trait set; the maps stay string-keyed so the engines do not
// care how many axes a given variant defines.
const (
	TraitBoldness = "boldness"
	TraitElegance = "elegance"
	TraitWhimsy   = "whimsy"
)

// UserProfile is everything the matcher knows about the requester. Theme is
// matched against Product.Category, BagType as a substring of the product
// name. PersonalityScores and Sentiment are optional (nil / empty means the
// matcher falls back to neutral defaults for those sub-scores).
type UserProfile struct {
	Theme             string         `json:"theme"`
	BagType           string         `json:"bag_type"`
	PersonalityScores map[string]int `json:"personality_scores,omitempty"`
	Sentiment         string         `json:"sentiment,omitempty"`
}

// HasPersonality reports whether at least one trait score is present.
func (p UserProfile) HasPersonality() bool {
	return len(p.PersonalityScores) > 0
}
