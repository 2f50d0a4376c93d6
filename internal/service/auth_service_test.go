package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-signing-key"

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func newTestAuth(repo repository.Authorization) *AuthService {
	return NewAuthService(repo, testSigningKey, time.Hour, bcrypt.MinCost)
}

// --- Register tests ---

func TestAuthService_Register_SuccessHashesPasswordAndIssuesToken(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) { return 1, nil },
	}
	svc := newTestAuth(mock)

	identity, token, err := svc.Register(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if identity != (models.Identity{ID: 1, Username: "alice"}) {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.hash == "pw123" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "pw123"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}

	got, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if got != identity {
		t.Fatalf("token carries %+v, want %+v", got, identity)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			t.Fatal("Create should not be called for missing fields")
			return 0, nil
		},
	}
	svc := newTestAuth(mock)

	for _, in := range [][2]string{{"", "pw"}, {"bob", ""}, {"", ""}} {
		_, _, err := svc.Register(context.Background(), in[0], in[1])
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Register(%q,%q): expected ErrValidation, got %v", in[0], in[1], err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	existing := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		CreateFn: func(username, hash string) (int, error) {
			t.Fatal("Create should not be called for an existing user")
			return 0, nil
		},
	}
	if _, _, err := newTestAuth(existing).Register(context.Background(), "alice", "pw"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Lost race: lookup misses but the store rejects the insert.
	racing := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) { return 0, repository.ErrUserExists },
	}
	if _, _, err := newTestAuth(racing).Register(context.Background(), "alice", "pw"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RepoError(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) { return 0, errors.New("db down") },
	}
	_, token, err := newTestAuth(mock).Register(context.Background(), "carl", "pass123")
	if err == nil || errors.Is(err, ErrUserExists) {
		t.Fatalf("expected raw repo error, got %v", err)
	}
	if token != "" {
		t.Fatalf("no token expected on failure")
	}
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return &models.User{ID: 7, Username: "diana", PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuth(mock)

	identity, token, err := svc.Login(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.ID != 7 || identity.Username != "diana" {
		t.Fatalf("unexpected identity %+v", identity)
	}

	got, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if got != identity {
		t.Fatalf("token carries %+v, want %+v", got, identity)
	}
}

func TestAuthService_Login_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username == "eve" {
				return &models.User{ID: 1, Username: "eve", PasswordHash: string(hash)}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuth(mock)

	_, _, errWrong := svc.Login(context.Background(), "eve", "wrong")
	_, _, errUnknown := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(errWrong, ErrInvalidCredentials) || !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errWrong, errUnknown)
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("messages must not reveal which check failed: %q vs %q", errWrong, errUnknown)
	}
}

func TestAuthService_Login_Errors(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) { return nil, errors.New("query failed") },
	})
	if _, _, err := svc.Login(context.Background(), "john", "pw"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	if _, _, err := svc.Login(context.Background(), "john", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	if _, err := svc.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(badToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

func TestNewAuthService_Defaults(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, "k", 0, 1)
	if svc.tokenTTL != defaultTokenTTL {
		t.Errorf("tokenTTL=%s, want %s", svc.tokenTTL, defaultTokenTTL)
	}
	if svc.bcryptCost != defaultBcryptCost {
		t.Errorf("bcryptCost=%d, want %d", svc.bcryptCost, defaultBcryptCost)
	}
}
