package service

import (
	"context"
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/matcher"
	"persona-matcher/internal/repository"
)

// RecommendationService runs the catalog matcher over the current snapshot
// and answers related-artwork lookups via the stored style vectors.
type RecommendationService struct {
	logger   *zap.Logger
	catalog  *CatalogService
	products repository.ProductRepository
	cfg      matcher.Config
}

func NewRecommendationService(
	logger *zap.Logger,
	catalog *CatalogService,
	products repository.ProductRepository,
	cfg matcher.Config,
) *RecommendationService {
	return &RecommendationService{
		logger:   logger,
		catalog:  catalog,
		products: products,
		cfg:      cfg,
	}
}

// Recommend ranks the snapshot against the profile. Engine errors pass
// through untouched so the handler can map the taxonomy (unknown theme vs
// empty shelf) to distinct responses.
func (s *RecommendationService) Recommend(_ context.Context, profile domain.UserProfile, limit int) (domain.RecommendationResult, error) {
	cfg := s.cfg
	if limit > 0 {
		cfg.Limit = limit
	}
	result, err := matcher.Recommend(s.catalog.Snapshot(), profile, cfg)
	if err != nil {
		return domain.RecommendationResult{}, err
	}
	s.logger.Info("recommendations generated",
		zap.String("theme", profile.Theme),
		zap.String("bag_type", profile.BagType),
		zap.Int("results", len(result.Recommendations)),
	)
	return result, nil
}

// SimilarArtworks finds the artworks whose style vectors are closest to the
// user's trait scores on the (boldness, elegance, whimsy) axes.
func (s *RecommendationService) SimilarArtworks(ctx context.Context, scores map[string]int, k int) ([]repository.ArtworkStyle, error) {
	query := pgvector.NewVector([]float32{
		float32(scores[domain.TraitBoldness]) / 100,
		float32(scores[domain.TraitElegance]) / 100,
		float32(scores[domain.TraitWhimsy]) / 100,
	})
	styles, err := s.products.SearchSimilarArtworks(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("search similar artworks: %w", err)
	}
	return styles, nil
}
