package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
	"github.com/phictor/leadcitymfb-sub000/internal/store"
)

// fakeAdminStore is an in-memory adminStore for auth tests.
type fakeAdminStore struct {
	users  map[string]*domain.AdminUser
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{users: make(map[string]*domain.AdminUser), nextID: 1}
}

func (f *fakeAdminStore) CreateAdminUser(_ context.Context, username, passwordHash string) (*domain.AdminUser, error) {
	if _, exists := f.users[username]; exists {
		return nil, store.ErrConflict
	}
	u := &domain.AdminUser{ID: f.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.nextID++
	f.users[username] = u
	return u, nil
}

func (f *fakeAdminStore) GetAdminUserByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeAdminStore) CountAdminUsers(_ context.Context) (int, error) {
	return len(f.users), nil
}

func newTestAuthService(s adminStore, ttl time.Duration) *AuthService {
	return NewAuthService(s, "test-secret", ttl)
}

func TestSetupCreatesFirstAdmin(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, time.Hour)

	user, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("expected username admin, got %q", user.Username)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestSetupRefusesSecondAdmin(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, time.Hour)

	if _, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"}); err != nil {
		t.Fatalf("first Setup failed: %v", err)
	}
	_, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "other", Password: "another-pass"})
	if !errors.Is(err, ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestLoginAndVerifySession(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, time.Hour)

	created, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	token, err := auth.Login(context.Background(), domain.AdminCredentials{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}

	adminID, err := auth.VerifySession(token)
	if err != nil {
		t.Fatalf("VerifySession returned error: %v", err)
	}
	if adminID != created.ID {
		t.Errorf("expected admin id %d, got %d", created.ID, adminID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, time.Hour)
	if _, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	tests := []struct {
		name  string
		creds domain.AdminCredentials
	}{
		{"wrong password", domain.AdminCredentials{Username: "admin", Password: "wrong"}},
		{"unknown user", domain.AdminCredentials{Username: "nobody", Password: "correct-horse"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), tc.creds)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestVerifySessionRejectsTamperedToken(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, time.Hour)
	if _, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	token, err := auth.Login(context.Background(), domain.AdminCredentials{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Flip a character in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.VerifySession(tampered); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for tampered token, got %v", err)
	}

	// A token signed under a different secret must also fail.
	other := NewAuthService(fs, "other-secret", time.Hour)
	otherToken, err := other.Login(context.Background(), domain.AdminCredentials{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login under other secret failed: %v", err)
	}
	if _, err := auth.VerifySession(otherToken); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for foreign token, got %v", err)
	}
}

func TestVerifySessionRejectsExpiredToken(t *testing.T) {
	fs := newFakeAdminStore()
	auth := newTestAuthService(fs, -time.Minute)
	if _, err := auth.Setup(context.Background(), domain.AdminSetupRequest{Username: "admin", Password: "correct-horse"}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	token, err := auth.Login(context.Background(), domain.AdminCredentials{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := auth.VerifySession(token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}
