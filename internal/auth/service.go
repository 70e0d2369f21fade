package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-store/lumina/internal/apperr"
	"github.com/lumina-store/lumina/internal/config"
)

const minPasswordLen = 6

const (
	msgInvalidCredentials = "invalid email or password"
	msgSessionInvalid     = "session invalid"
	msgTokenRequired      = "authorization required"
)

// WalletProvisioner creates the zero-balance wallet that accompanies every
// new account. Satisfied by wallet.Service.
type WalletProvisioner interface {
	CreateForUser(ctx context.Context, userID string) error
}

// Service manages the account and session lifecycle: credential hashing,
// opaque bearer tokens, expiry-bound validation and role gating.
type Service struct {
	repo       Repository
	wallets    WalletProvisioner
	sessionTTL time.Duration
}

// NewService creates the session authenticator.
func NewService(cfg config.Config, repo Repository, wallets WalletProvisioner) *Service {
	return &Service{repo: repo, wallets: wallets, sessionTTL: cfg.SessionTTL}
}

// AuthResult carries a public profile and the raw bearer token. The token is
// only ever returned here, at issue time.
type AuthResult struct {
	User  PublicUser
	Token string
}

// Register creates an account with a freshly salted password hash, provisions
// its zero-balance wallet and issues the first session.
func (s *Service) Register(ctx context.Context, creds Credentials) (AuthResult, error) {
	email := NormalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return AuthResult{}, apperr.Validation("email and password are required")
	}
	// Character count, not bytes: multibyte passwords must clear the same bar.
	if utf8.RuneCountInString(creds.Password) < minPasswordLen {
		return AuthResult{}, apperr.Validation("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, apperr.Unexpected(err)
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(creds.FullName),
		Phone:        strings.TrimSpace(creds.Phone),
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return AuthResult{}, apperr.Conflict("user with this email already exists")
		}
		return AuthResult{}, apperr.Unexpected(err)
	}

	if s.wallets != nil {
		if err := s.wallets.CreateForUser(ctx, user.ID); err != nil {
			return AuthResult{}, apperr.Unexpected(err)
		}
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user.Public(), Token: token}, nil
}

// Login verifies credentials and issues a new session without touching any
// session issued earlier. Lookup and verification failures are deliberately
// indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperr.Validation("email and password are required")
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, apperr.Auth(msgInvalidCredentials)
		}
		return AuthResult{}, apperr.Unexpected(err)
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return AuthResult{}, apperr.Auth(msgInvalidCredentials)
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user.Public(), Token: token}, nil
}

// VerifySession resolves a bearer token to its owner's public profile. A
// missing, unknown, expired and revoked token all yield the same answer.
func (s *Service) VerifySession(ctx context.Context, token string) (PublicUser, error) {
	if token == "" {
		return PublicUser{}, apperr.Auth(msgTokenRequired)
	}
	user, err := s.repo.FindActiveSessionUser(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PublicUser{}, apperr.Auth(msgSessionInvalid)
		}
		return PublicUser{}, apperr.Unexpected(err)
	}
	return user.Public(), nil
}

// Logout revokes the session by moving its expiry to now. Revoking an
// expired or unknown token matches zero rows and still succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperr.Auth(msgTokenRequired)
	}
	if err := s.repo.ExpireSession(ctx, token); err != nil {
		return apperr.Unexpected(err)
	}
	return nil
}

// ChangePassword rotates the stored credential hash after verifying the
// current password. Sessions issued earlier stay valid.
func (s *Service) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	if token == "" {
		return apperr.Auth(msgTokenRequired)
	}
	if oldPassword == "" || newPassword == "" {
		return apperr.Validation("old and new passwords are required")
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLen {
		return apperr.Validation("new password must be at least 6 characters")
	}

	user, err := s.repo.FindActiveSessionUser(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.Auth(msgSessionInvalid)
		}
		return apperr.Unexpected(err)
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(oldPassword)) != nil {
		return apperr.Auth("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return apperr.Unexpected(err)
	}
	return nil
}

// AuthorizeAdmin composes VerifySession with a role check. It guards every
// admin-only operation.
func (s *Service) AuthorizeAdmin(ctx context.Context, token string) (PublicUser, error) {
	user, err := s.VerifySession(ctx, token)
	if err != nil {
		return PublicUser{}, err
	}
	if !user.IsAdmin() {
		return PublicUser{}, apperr.Forbidden("administrator access required")
	}
	return user, nil
}

func (s *Service) issueSession(ctx context.Context, userID string) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", apperr.Unexpected(err)
	}
	now := time.Now().UTC()
	session := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return "", apperr.Unexpected(err)
	}
	return token, nil
}

// NormalizeEmail lowercases and trims an email so that exactly one user row
// can exist per address regardless of case variation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
