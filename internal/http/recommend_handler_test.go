package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/matcher"
	"persona-matcher/internal/repository"
	"persona-matcher/internal/service"
)

type stubProductRepo struct {
	products []domain.Product
	styles   []repository.ArtworkStyle
}

func (s *stubProductRepo) ListAll(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) CountByCategory(context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts, nil
}

func (s *stubProductRepo) SearchSimilarArtworks(context.Context, pgvector.Vector, int) ([]repository.ArtworkStyle, error) {
	return s.styles, nil
}

func newRecommendRouter(t *testing.T, products []domain.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubProductRepo{products: products}
	catalog := service.NewCatalogService(zap.NewNop(), repo)
	if err := catalog.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	recommendSvc := service.NewRecommendationService(zap.NewNop(), catalog, repo, matcher.DefaultConfig())

	r := gin.New()
	h := NewRecommendHandler(zap.NewNop(), recommendSvc)
	r.POST("/recommendations", h.Recommend)
	r.GET("/themes", h.Themes)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendHandler_Success(t *testing.T) {
	router := newRecommendRouter(t, []domain.Product{
		{ArtworkName: "Leopard Run", ProductName: "Leopard Crossbody", Category: "Animal"},
		{ArtworkName: "Leopard Run", ProductName: "Leopard Wallet", Category: "Animal"},
	})

	w := postJSON(t, router, "/recommendations", gin.H{
		"theme":    "Animal",
		"bag_type": "crossbody",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool                        `json:"success"`
		Result  domain.RecommendationResult `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success payload")
	}
	if len(resp.Result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.Result.Recommendations))
	}
	if resp.Result.SuggestedBagType != "crossbody" {
		t.Fatalf("expected suggested type crossbody, got %q", resp.Result.SuggestedBagType)
	}
}

func TestRecommendHandler_UnknownThemeIs400(t *testing.T) {
	router := newRecommendRouter(t, []domain.Product{
		{ArtworkName: "Leopard Run", ProductName: "Leopard Crossbody", Category: "Animal"},
	})

	w := postJSON(t, router, "/recommendations", gin.H{"theme": "Spaceships"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown theme, got %d", w.Code)
	}
}

func TestRecommendHandler_NoMatchesIs404(t *testing.T) {
	router := newRecommendRouter(t, []domain.Product{
		{ArtworkName: "Leopard Run", ProductName: "Leopard Crossbody", Category: "Animal"},
	})

	w := postJSON(t, router, "/recommendations", gin.H{"theme": "Vehicles/Transport", "bag_type": "tote"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty result, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("expected failure payload with message, got %+v", resp)
	}
}

func TestRecommendHandler_MissingThemeIs400(t *testing.T) {
	router := newRecommendRouter(t, nil)

	w := postJSON(t, router, "/recommendations", gin.H{"bag_type": "tote"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing theme, got %d", w.Code)
	}
}

func TestThemesEndpoint(t *testing.T) {
	router := newRecommendRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/themes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Themes []string `json:"themes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Themes) != 8 {
		t.Fatalf("expected the 8 theme buckets, got %v", resp.Themes)
	}
}
