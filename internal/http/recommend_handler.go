package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/matcher"
	"persona-matcher/internal/service"
)

// RecommendHandler exposes the catalog matcher.
type RecommendHandler struct {
	logger          *zap.Logger
	recommendations *service.RecommendationService
}

func NewRecommendHandler(logger *zap.Logger, recommendations *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		logger:          logger,
		recommendations: recommendations,
	}
}

// Recommend maneja POST /recommendations.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req struct {
		Theme             string         `json:"theme" binding:"required"`
		BagType           string         `json:"bag_type"`
		PersonalityScores map[string]int `json:"personality_scores"`
		Sentiment         string         `json:"sentiment"`
		Limit             int            `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	profile := domain.UserProfile{
		Theme:             req.Theme,
		BagType:           req.BagType,
		PersonalityScores: req.PersonalityScores,
		Sentiment:         req.Sentiment,
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), profile, req.Limit)
	switch {
	case errors.Is(err, domain.ErrUnknownTheme):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, domain.ErrNoMatches):
		// A legitimate empty shelf: "try a different combination", not a
		// system fault.
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		h.logger.Error("recommend failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// Themes maneja GET /themes.
func (h *RecommendHandler) Themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": matcher.Themes()})
}

// SimilarArtworks maneja POST /artworks/similar.
func (h *RecommendHandler) SimilarArtworks(c *gin.Context) {
	var req struct {
		PersonalityScores map[string]int `json:"personality_scores" binding:"required"`
		Limit             int            `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid similar artworks request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	styles, err := h.recommendations.SimilarArtworks(c.Request.Context(), req.PersonalityScores, req.Limit)
	if err != nil {
		h.logger.Error("similar artworks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not search artworks"})
		return
	}

	artworks := make([]gin.H, 0, len(styles))
	for _, s := range styles {
		artworks = append(artworks, gin.H{
			"artwork_name": s.ArtworkName,
			"category":     s.Category,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artworks": artworks})
}
