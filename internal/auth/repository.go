package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the requested user or session row is absent.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken indicates the normalized email already has a user row.
	ErrEmailTaken = errors.New("email already taken")
)

// Repository persists users and sessions.
type Repository interface {
	CreateUser(ctx context.Context, user User) error
	FindUserByEmail(ctx context.Context, email string) (User, error)
	UpdatePasswordHash(ctx context.Context, userID string, hash []byte) error
	CreateSession(ctx context.Context, session Session) error
	// FindActiveSessionUser resolves a token to its owning user, requiring
	// the session expiry to lie in the future.
	FindActiveSessionUser(ctx context.Context, token string) (User, error)
	// ExpireSession moves a still-active session's expiry to the current
	// time. Matching zero rows is not an error.
	ExpireSession(ctx context.Context, token string) error
}

const uniqueViolation = "23505"

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed auth repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateUser inserts a new user. The unique index on email serializes
// concurrent registrations; the loser surfaces ErrEmailTaken.
func (r *PostgresRepository) CreateUser(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, email, password_hash, full_name, phone, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		userID, user.Email, user.PasswordHash, user.FullName, user.Phone, user.Role, user.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

// FindUserByEmail fetches a user by normalized email.
func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, password_hash, full_name, phone, role, created_at, updated_at
        FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// UpdatePasswordHash replaces the stored credential hash.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, userID string, hash []byte) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, hash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateSession inserts a session row for a freshly issued token.
func (r *PostgresRepository) CreateSession(ctx context.Context, session Session) error {
	sessionID, err := uuid.Parse(session.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO sessions (id, user_id, token, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		sessionID, userID, session.Token, session.ExpiresAt.UTC(), session.CreatedAt.UTC())
	return err
}

// FindActiveSessionUser joins the session to its owner, filtering out
// expired and revoked rows at read time.
func (r *PostgresRepository) FindActiveSessionUser(ctx context.Context, token string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT u.id, u.email, u.password_hash, u.full_name, u.phone, u.role, u.created_at, u.updated_at
        FROM users u
        JOIN sessions s ON u.id = s.user_id
        WHERE s.token = $1 AND s.expires_at > NOW()`, token)
	return scanUser(row)
}

// ExpireSession revokes a session by moving its expiry to now. The guard on
// expires_at keeps an already-past expiry from moving forward.
func (r *PostgresRepository) ExpireSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `UPDATE sessions SET expires_at = NOW()
        WHERE token = $1 AND expires_at > NOW()`, token)
	return err
}

func scanUser(row pgx.Row) (User, error) {
	var (
		id                   uuid.UUID
		createdAt, updatedAt time.Time
		user                 User
	)
	err := row.Scan(&id, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.Role, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	user.ID = id.String()
	user.CreatedAt = createdAt.UTC()
	user.UpdatedAt = updatedAt.UTC()
	return user, nil
}
