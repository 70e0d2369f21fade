package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the product row is absent or hidden.
var ErrNotFound = errors.New("product not found")

// Repository persists catalogue items.
type Repository interface {
	ListActive(ctx context.Context) ([]Product, error)
	GetActive(ctx context.Context, id string) (Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) error
	// Update rewrites the writable fields and returns the stored row with
	// its stamped timestamps.
	Update(ctx context.Context, p Product) (Product, error)
}

const productColumns = `id, title, description, price, category, image_url, is_active, created_at, updated_at`

// PostgresRepository stores products in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed product repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListActive returns visible products, newest first.
func (r *PostgresRepository) ListActive(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products
        WHERE is_active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetActive fetches one visible product; hidden and absent rows are
// indistinguishable.
func (r *PostgresRepository) GetActive(ctx context.Context, id string) (Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return Product{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products
        WHERE id = $1 AND is_active = true`, productID)
	return scanProduct(row)
}

// ListAll returns every product regardless of visibility, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Create inserts a catalogue item.
func (r *PostgresRepository) Create(ctx context.Context, p Product) error {
	productID, err := uuid.Parse(p.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO products (id, title, description, price, category, image_url, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		productID, p.Title, p.Description, p.Price, p.Category, p.ImageURL, p.IsActive, p.CreatedAt.UTC())
	return err
}

// Update rewrites the writable fields of an existing item.
func (r *PostgresRepository) Update(ctx context.Context, p Product) (Product, error) {
	productID, err := uuid.Parse(p.ID)
	if err != nil {
		return Product{}, ErrNotFound
	}
	var createdAt, updatedAt time.Time
	err = r.db.QueryRow(ctx, `UPDATE products
        SET title = $1, description = $2, price = $3, category = $4, image_url = $5, is_active = $6, updated_at = NOW()
        WHERE id = $7
        RETURNING created_at, updated_at`,
		p.Title, p.Description, p.Price, p.Category, p.ImageURL, p.IsActive, productID).Scan(&createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]Product, error) {
	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		id                   uuid.UUID
		createdAt, updatedAt time.Time
		p                    Product
	)
	err := row.Scan(&id, &p.Title, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.IsActive, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	p.ID = id.String()
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
