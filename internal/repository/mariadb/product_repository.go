package mariadb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

const productColumns = "id, name, slug, description, category, brand_id, price_cents, currency, featured, is_active, image_url, created_at, updated_at"

type ProductRepository struct {
	db *sql.DB
}

// compile-time check: *ProductRepository must satisfy port.ProductRepository
var _ port.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	logger.Debugf(ctx, "creating database record for product #%s...", p.ID)

	const query = `
      INSERT INTO products
        (id, name, slug, description, category, brand_id, price_cents, currency, featured, is_active, image_url, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Description,
		p.Category, p.BrandID, p.PriceCents, p.Currency,
		p.Featured, p.IsActive, p.ImageURL,
		p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	logger.Debugf(ctx, "updating database record for product #%s...", p.ID)

	const query = `
      UPDATE products
      SET
        name        = ?,
        slug        = ?,
        description = ?,
        category    = ?,
        brand_id    = ?,
        price_cents = ?,
        currency    = ?,
        featured    = ?,
        is_active   = ?,
        image_url   = ?,
        updated_at  = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Slug, p.Description,
		p.Category, p.BrandID, p.PriceCents, p.Currency,
		p.Featured, p.IsActive, p.ImageURL,
		p.UpdatedAt,
		p.ID, // WHERE clause
	)
	return mapWriteErr(err)
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	logger.Debugf(ctx, "fetching product #%s from the database...", id)

	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting database record for product #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, querycatalog.ProductsActive)
}

func (r *ProductRepository) ListActiveByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.list(ctx, querycatalog.ProductsByCategory.With("category", category))
}

func (r *ProductRepository) ListFeatured(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, querycatalog.ProductsFeatured)
}

func (r *ProductRepository) ListActiveByBrand(ctx context.Context, brandID string) ([]model.Product, error) {
	return r.list(ctx, querycatalog.ProductsByBrand.With("brand_id", brandID))
}

func (r *ProductRepository) CountByActive(ctx context.Context) (int, int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT is_active, COUNT(*) FROM products GROUP BY is_active")
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = rows.Close() }()

	var active, inactive int
	for rows.Next() {
		var isActive bool
		var n int
		if err := rows.Scan(&isActive, &n); err != nil {
			return 0, 0, err
		}
		if isActive {
			active = n
		} else {
			inactive = n
		}
	}
	return active, inactive, rows.Err()
}

func (r *ProductRepository) list(ctx context.Context, spec querycatalog.QuerySpec) ([]model.Product, error) {
	logger.Debugf(ctx, "listing %s from the database...", spec)

	query, args := spec.SQL(productColumns)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanProduct(s scanner) (*model.Product, error) {
	var p model.Product
	if err := s.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description,
		&p.Category, &p.BrandID, &p.PriceCents, &p.Currency,
		&p.Featured, &p.IsActive, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
