package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-store/lumina/internal/apperr"
	"github.com/lumina-store/lumina/internal/config"
)

type walletStub struct {
	created []string
}

func (w *walletStub) CreateForUser(_ context.Context, userID string) error {
	w.created = append(w.created, userID)
	return nil
}

func newTestService() (*Service, Repository, *walletStub) {
	repo := NewMemoryRepository()
	wallets := &walletStub{}
	cfg := config.Config{SessionTTL: 30 * 24 * time.Hour}
	return NewService(cfg, repo, wallets), repo, wallets
}

func register(t *testing.T, svc *Service, email, password string) AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), Credentials{Email: email, Password: password, FullName: "Test User"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return result
}

func wantKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := apperr.KindOf(err); got != kind {
		t.Fatalf("expected kind %v, got %v (%v)", kind, got, err)
	}
}

func TestRegisterIssuesTokenAndWallet(t *testing.T) {
	svc, _, wallets := newTestService()

	result := register(t, svc, "Shopper@Example.COM", "secret1")
	if result.Token == "" {
		t.Fatal("expected a raw token at registration")
	}
	if result.User.Email != "shopper@example.com" {
		t.Fatalf("expected normalized email, got %s", result.User.Email)
	}
	if result.User.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, result.User.Role)
	}
	if len(wallets.created) != 1 || wallets.created[0] != result.User.ID {
		t.Fatalf("expected one wallet for %s, got %v", result.User.ID, wallets.created)
	}

	user, err := svc.VerifySession(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("verify fresh session: %v", err)
	}
	if user.ID != result.User.ID {
		t.Fatalf("expected session owner %s, got %s", result.User.ID, user.ID)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService()

	register(t, svc, "A@b.com", "secret1")
	_, err := svc.Register(context.Background(), Credentials{Email: "a@B.COM", Password: "secret2"})
	wantKind(t, err, apperr.KindConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret1"},
		{"missing password", "x@y.com", ""},
		{"short password", "x@y.com", "12345"},
		// Five characters even though each is two bytes in UTF-8.
		{"short multibyte password", "x@y.com", "пять!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, Credentials{Email: tc.email, Password: tc.password})
			wantKind(t, err, apperr.KindValidation)
		})
	}
}

func TestRegisterAcceptsSixCharacterMultibytePassword(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Register(context.Background(), Credentials{Email: "ru@shop.com", Password: "пароль"}); err != nil {
		t.Fatalf("expected six-character password to pass, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	register(t, svc, "known@shop.com", "secret1")

	_, errWrongPassword := svc.Login(ctx, "known@shop.com", "wrong-pass")
	_, errNoSuchUser := svc.Login(ctx, "ghost@shop.com", "secret1")

	wantKind(t, errWrongPassword, apperr.KindAuth)
	wantKind(t, errNoSuchUser, apperr.KindAuth)
	if errWrongPassword.Error() != errNoSuchUser.Error() {
		t.Fatalf("messages differ: %q vs %q", errWrongPassword, errNoSuchUser)
	}
}

func TestLoginKeepsPriorSessions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := register(t, svc, "multi@shop.com", "secret1")
	second, err := svc.Login(ctx, "multi@shop.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if first.Token == second.Token {
		t.Fatal("expected a fresh token per login")
	}
	if _, err := svc.VerifySession(ctx, first.Token); err != nil {
		t.Fatalf("first session should stay valid: %v", err)
	}
	if _, err := svc.VerifySession(ctx, second.Token); err != nil {
		t.Fatalf("second session should be valid: %v", err)
	}
}

func TestLogoutRevokesAndIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	result := register(t, svc, "leaver@shop.com", "secret1")

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, err := svc.VerifySession(ctx, result.Token)
	wantKind(t, err, apperr.KindAuth)

	// Second logout matches zero rows and still succeeds.
	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("repeated logout: %v", err)
	}
	if err := svc.Logout(ctx, "never-issued-token"); err != nil {
		t.Fatalf("logout of unknown token: %v", err)
	}
}

func TestVerifySessionEdges(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.VerifySession(ctx, "")
	wantKind(t, err, apperr.KindAuth)

	_, err = svc.VerifySession(ctx, "unknown-token")
	wantKind(t, err, apperr.KindAuth)

	// A stored session with a past expiry is never valid even though the
	// row exists.
	result := register(t, svc, "expired@shop.com", "secret1")
	stale := Session{
		ID:        uuid.New().String(),
		UserID:    result.User.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	if err := repo.CreateSession(ctx, stale); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	_, err = svc.VerifySession(ctx, stale.Token)
	wantKind(t, err, apperr.KindAuth)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	result := register(t, svc, "rotate@shop.com", "old-secret")

	if err := svc.ChangePassword(ctx, "", "old-secret", "new-secret"); err == nil {
		t.Fatal("expected error without token")
	}
	wantKind(t, svc.ChangePassword(ctx, result.Token, "", "new-secret"), apperr.KindValidation)
	wantKind(t, svc.ChangePassword(ctx, result.Token, "old-secret", "short"), apperr.KindValidation)
	wantKind(t, svc.ChangePassword(ctx, result.Token, "old-secret", "пять!"), apperr.KindValidation)
	wantKind(t, svc.ChangePassword(ctx, result.Token, "not-the-password", "new-secret"), apperr.KindAuth)

	if err := svc.ChangePassword(ctx, result.Token, "old-secret", "new-secret"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	_, err := svc.Login(ctx, "rotate@shop.com", "old-secret")
	wantKind(t, err, apperr.KindAuth)
	if _, err := svc.Login(ctx, "rotate@shop.com", "new-secret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// Existing sessions survive a password change (carried behavior).
	if _, err := svc.VerifySession(ctx, result.Token); err != nil {
		t.Fatalf("session should survive password change: %v", err)
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	regular := register(t, svc, "plain@shop.com", "secret1")
	_, err := svc.AuthorizeAdmin(ctx, regular.Token)
	wantKind(t, err, apperr.KindForbidden)

	_, err = svc.AuthorizeAdmin(ctx, "")
	wantKind(t, err, apperr.KindAuth)
	_, err = svc.AuthorizeAdmin(ctx, "unknown-token")
	wantKind(t, err, apperr.KindAuth)

	// Seed an admin account directly; role is never settable by registrants.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	adminUser := User{
		ID:           uuid.New().String(),
		Email:        "boss@shop.com",
		PasswordHash: hash,
		Role:         RoleAdmin,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := repo.CreateUser(ctx, adminUser); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	result, err := svc.Login(ctx, "boss@shop.com", "admin-secret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	got, err := svc.AuthorizeAdmin(ctx, result.Token)
	if err != nil {
		t.Fatalf("authorize admin: %v", err)
	}
	if got.ID != adminUser.ID {
		t.Fatalf("expected admin %s, got %s", adminUser.ID, got.ID)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pa55word"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte("pa55word")) != nil {
		t.Fatal("expected hash to verify against original password")
	}
	if bcrypt.CompareHashAndPassword(hash, []byte("pa55word!")) == nil {
		t.Fatal("expected hash to reject a different password")
	}

	// Per-call salting: hashing the same password twice never reuses a salt.
	again, err := bcrypt.GenerateFromPassword([]byte("pa55word"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if string(hash) == string(again) {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestRegisterUnexpectedRepoError(t *testing.T) {
	cfg := config.Config{SessionTTL: time.Hour}
	svc := NewService(cfg, failingRepo{}, nil)
	_, err := svc.Register(context.Background(), Credentials{Email: "x@y.com", Password: "secret1"})
	wantKind(t, err, apperr.KindUnexpected)
}

type failingRepo struct{}

var errDown = errors.New("datastore down")

func (failingRepo) CreateUser(context.Context, User) error         { return errDown }
func (failingRepo) FindUserByEmail(context.Context, string) (User, error) {
	return User{}, errDown
}
func (failingRepo) UpdatePasswordHash(context.Context, string, []byte) error { return errDown }
func (failingRepo) CreateSession(context.Context, Session) error             { return errDown }
func (failingRepo) FindActiveSessionUser(context.Context, string) (User, error) {
	return User{}, errDown
}
func (failingRepo) ExpireSession(context.Context, string) error { return errDown }
