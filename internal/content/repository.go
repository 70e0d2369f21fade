package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists site content blocks.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Upsert(ctx context.Context, entry Entry) error
}

// PostgresRepository stores content in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed content repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all content blocks ordered by section then key.
func (r *PostgresRepository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, section, key, content, content_type, COALESCE(updated_by::text, ''), updated_at
        FROM site_content ORDER BY section, key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			updatedAt time.Time
			e         Entry
		)
		if err := rows.Scan(&id, &e.Section, &e.Key, &e.Content, &e.ContentType, &e.UpdatedBy, &updatedAt); err != nil {
			return nil, err
		}
		e.ID = id.String()
		e.UpdatedAt = updatedAt.UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Upsert inserts or rewrites the block at (section, key), stamping the
// editing admin.
func (r *PostgresRepository) Upsert(ctx context.Context, entry Entry) error {
	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	updatedBy, err := uuid.Parse(entry.UpdatedBy)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO site_content (id, section, key, content, content_type, updated_by, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        ON CONFLICT (section, key)
        DO UPDATE SET content = EXCLUDED.content, content_type = EXCLUDED.content_type,
                      updated_by = EXCLUDED.updated_by, updated_at = NOW()`,
		entryID, entry.Section, entry.Key, entry.Content, entry.ContentType, updatedBy)
	return err
}
