package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"persona-matcher/internal/domain"
)

// ArtworkStyle pairs an artwork with its stored style vector
// (boldness, elegance, whimsy).
type ArtworkStyle struct {
	ArtworkName string
	Category    string
	Style       pgvector.Vector
}

type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	// SearchSimilarArtworks returns the k artworks whose style vectors sit
	// closest to the query vector by cosine distance.
	SearchSimilarArtworks(ctx context.Context, style pgvector.Vector, k int) ([]ArtworkStyle, error)
}

type PgProductRepository struct {
	pool *pgxpool.Pool
}

func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

func (r *PgProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT artwork_name, product_name, category, price, image_url, product_url
		FROM products
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PgProductRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const query = `
		SELECT artwork_name, product_name, category, price, image_url, product_url
		FROM products
		WHERE lower(category) = lower($1)
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PgProductRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	const query = `
		SELECT category, count(*)
		FROM products
		GROUP BY category
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[category] = n
	}
	return counts, rows.Err()
}

func (r *PgProductRepository) SearchSimilarArtworks(ctx context.Context, style pgvector.Vector, k int) ([]ArtworkStyle, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT artwork_name, category, style
		FROM artwork_styles
		ORDER BY style <=> $1
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, style, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var styles []ArtworkStyle
	for rows.Next() {
		var a ArtworkStyle
		if err := rows.Scan(&a.ArtworkName, &a.Category, &a.Style); err != nil {
			return nil, err
		}
		styles = append(styles, a)
	}
	return styles, rows.Err()
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ArtworkName,
			&p.ProductName,
			&p.Category,
			&p.Price,
			&p.ImageURL,
			&p.ProductURL,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
