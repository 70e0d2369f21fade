package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the cross-domain aggregates backing the admin dashboard.
type Repository interface {
	ListUsers(ctx context.Context) ([]UserRecord, error)
	Stats(ctx context.Context) (Stats, error)
}

// PostgresRepository reads aggregates from PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed admin repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListUsers returns all accounts with their wallet balance, newest first.
func (r *PostgresRepository) ListUsers(ctx context.Context) ([]UserRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT u.id, u.email, u.full_name, u.phone, u.role, u.created_at,
               COALESCE(w.balance, 0)
        FROM users u
        LEFT JOIN wallets w ON u.id = w.user_id
        ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserRecord, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			u         UserRecord
		)
		if err := rows.Scan(&id, &u.Email, &u.FullName, &u.Phone, &u.Role, &createdAt, &u.Balance); err != nil {
			return nil, err
		}
		u.ID = id.String()
		u.CreatedAt = createdAt.UTC()
		users = append(users, u)
	}
	return users, rows.Err()
}

// Stats counts users, visible products and orders, and sums paid revenue.
func (r *PostgresRepository) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.Users); err != nil {
		return Stats{}, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&stats.Products); err != nil {
		return Stats{}, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&stats.Orders); err != nil {
		return Stats{}, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = 'paid'`).Scan(&stats.Revenue); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
