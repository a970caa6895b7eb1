/**
 * @description
 * Admin authentication for the CMS panel. Credentials live in the
 * admin_users table as bcrypt hashes; a successful login issues a signed,
 * expiring JWT that the admin middleware verifies on every mutating
 * request. There are no hard-coded credential pairs anywhere.
 *
 * @dependencies
 * - github.com/golang-jwt/jwt/v5: session token signing and parsing.
 * - golang.org/x/crypto/bcrypt: password hashing.
 * - github.com/google/uuid: token ids.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
	"github.com/phictor/leadcitymfb-sub000/internal/store"
)

var (
	// ErrInvalidCredentials is returned for an unknown username or a
	// wrong password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAdminExists is returned when setup runs against a provisioned system.
	ErrAdminExists = errors.New("an administrator account already exists")

	// ErrInvalidSession is returned for missing, malformed, tampered or
	// expired session tokens.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// adminStore is the slice of the storage facade auth needs.
type adminStore interface {
	CreateAdminUser(ctx context.Context, username, passwordHash string) (*domain.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	CountAdminUsers(ctx context.Context) (int, error)
}

// AuthService manages admin credentials and sessions.
type AuthService struct {
	store  adminStore
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService signing sessions with secret.
func NewAuthService(s adminStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: s, secret: []byte(secret), ttl: ttl}
}

// Setup provisions the first administrator. It refuses once any admin
// exists so the endpoint cannot be abused after initial deployment.
func (a *AuthService) Setup(ctx context.Context, req domain.AdminSetupRequest) (*domain.AdminUser, error) {
	count, err := a.store.CountAdminUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := a.store.CreateAdminUser(ctx, req.Username, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAdminExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
func (a *AuthService) Login(ctx context.Context, creds domain.AdminCredentials) (string, error) {
	user, err := a.store.GetAdminUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn comparable time so username probing reveals nothing.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.issueToken(user.ID)
}

// dummyHash is a bcrypt hash of a throwaway value, used to equalize
// timing between unknown-user and wrong-password failures.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func (a *AuthService) issueToken(adminID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(adminID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifySession parses and validates a session token, returning the
// admin id it was issued for.
func (a *AuthService) VerifySession(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}
	return adminID, nil
}
