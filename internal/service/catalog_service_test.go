package service

import (
	"context"
	"errors"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/repository"
)

type mockProductRepo struct {
	products []domain.Product
	styles   []repository.ArtworkStyle
	err      error
	listed   int
}

func (m *mockProductRepo) ListAll(context.Context) ([]domain.Product, error) {
	m.listed++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) CountByCategory(context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for _, p := range m.products {
		counts[p.Category]++
	}
	return counts, nil
}

func (m *mockProductRepo) SearchSimilarArtworks(context.Context, pgvector.Vector, int) ([]repository.ArtworkStyle, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.styles, nil
}

func TestCatalogService_ReloadSwapsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &mockProductRepo{products: []domain.Product{
		{ArtworkName: "Leopard Run", ProductName: "Leopard Crossbody", Category: "Animal"},
	}}
	svc := NewCatalogService(zap.NewNop(), repo)

	if len(svc.Snapshot()) != 0 {
		t.Fatalf("expected empty snapshot before first reload")
	}

	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	before := svc.Snapshot()
	if len(before) != 1 {
		t.Fatalf("expected 1 product after reload, got %d", len(before))
	}

	repo.products = append(repo.products, domain.Product{
		ArtworkName: "Rose Garden", ProductName: "Rose Clutch", Category: "Flowers/Plants",
	})
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("second reload: %v", err)
	}

	// The old snapshot an in-flight request holds is untouched by the swap.
	if len(before) != 1 {
		t.Fatalf("old snapshot mutated by reload")
	}
	if len(svc.Snapshot()) != 2 {
		t.Fatalf("expected 2 products after second reload, got %d", len(svc.Snapshot()))
	}
}

func TestCatalogService_ReloadErrorKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &mockProductRepo{products: []domain.Product{
		{ArtworkName: "Leopard Run", ProductName: "Leopard Crossbody", Category: "Animal"},
	}}
	svc := NewCatalogService(zap.NewNop(), repo)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	repo.err = errors.New("db down")
	if err := svc.Reload(ctx); err == nil {
		t.Fatalf("expected reload error")
	}
	if len(svc.Snapshot()) != 1 {
		t.Fatalf("failed reload must keep the previous snapshot")
	}
}
