package domain

// ScoredProduct pairs a product with its match score while a request is being
// ranked. Created fresh per request and discarded after truncation.
type ScoredProduct struct {
	Product Product
	Score   int
	Reasons []string
}

// Recommendation is one entry of the final ranked list.
type Recommendation struct {
	ArtworkName     string   `json:"artwork_name"`
	ProductName     string   `json:"product_name"`
	ProductType     string   `json:"product_type"`
	Price           string   `json:"price"`
	ImageURL        string   `json:"image_url"`
	ProductURL      string   `json:"product_url"`
	MatchScore      int      `json:"match_score"`
	ConfidenceLabel string   `json:"confidence_label"`
	Reasons         []string `json:"reasons"`
}

// RecommendationSummary aggregates the returned set.
type RecommendationSummary struct {
	TotalProducts     int    `json:"total_products"`
	AverageMatchScore int    `json:"average_match_score"`
	ConfidenceLevel   string `json:"confidence_level"`
}

// RecommendationResult is the success payload of a recommend call.
type RecommendationResult struct {
	SuggestedBagType string                `json:"suggested_bag_type"`
	Confidence       int                   `json:"confidence"`
	AlternativeTypes []string              `json:"alternative_types"`
	Recommendations  []Recommendation      `json:"recommendations"`
	Summary          RecommendationSummary `json:"summary"`
}
