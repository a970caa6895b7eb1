package store

import (
	"context"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// CreateAdminUser stores a new administrator credential. Usernames are
// unique; a duplicate surfaces as ErrConflict.
func (p *Postgres) CreateAdminUser(ctx context.Context, username, passwordHash string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	query := `
        INSERT INTO admin_users (username, password_hash)
        VALUES ($1, $2)
        RETURNING id, username, password_hash, created_at`
	err := p.db.QueryRow(ctx, query, username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// GetAdminUserByUsername looks up an administrator for login.
func (p *Postgres) GetAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`
	err := p.db.QueryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// CountAdminUsers reports how many administrators exist; the setup
// endpoint refuses once the count is non-zero.
func (p *Postgres) CountAdminUsers(ctx context.Context) (int, error) {
	var count int
	err := p.db.QueryRow(ctx, `SELECT COUNT(1) FROM admin_users`).Scan(&count)
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}
