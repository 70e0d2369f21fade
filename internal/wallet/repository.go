package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no wallet row exists for the user.
var ErrNotFound = errors.New("wallet not found")

// Repository persists wallet records.
type Repository interface {
	Create(ctx context.Context, wallet Wallet) error
	GetByUser(ctx context.Context, userID string) (Wallet, error)
}

// PostgresRepository stores wallets in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a wallet record.
func (r *PostgresRepository) Create(ctx context.Context, wallet Wallet) error {
	walletID, err := uuid.Parse(wallet.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(wallet.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO wallets (id, user_id, balance, currency, created_at)
        VALUES ($1, $2, $3, $4, $5)`, walletID, userID, wallet.Balance, wallet.Currency, wallet.CreatedAt.UTC())
	return err
}

// GetByUser fetches the wallet owned by the given user.
func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (Wallet, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return Wallet{}, err
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, balance, currency, created_at
        FROM wallets WHERE user_id = $1`, ownerID)
	var (
		w         Wallet
		id, owner uuid.UUID
		createdAt time.Time
	)
	if err := row.Scan(&id, &owner, &w.Balance, &w.Currency, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrNotFound
		}
		return Wallet{}, err
	}
	w.ID = id.String()
	w.UserID = owner.String()
	w.CreatedAt = createdAt.UTC()
	return w, nil
}
