package store

import (
	"context"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

func scanBranch(row rowScanner) (*domain.Branch, error) {
	var b domain.Branch
	err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Latitude, &b.Longitude, &b.Hours, &b.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

const branchColumns = ` id, name, address, phone, latitude, longitude, hours, created_at`

// CreateBranch inserts a branch. Names are unique, so re-running the
// startup seed cannot duplicate the default branch.
func (p *Postgres) CreateBranch(ctx context.Context, in domain.BranchInsert) (*domain.Branch, error) {
	query := `
        INSERT INTO branches (name, address, phone, latitude, longitude, hours)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING` + branchColumns
	row := p.db.QueryRow(ctx, query,
		in.Name, in.Address, in.Phone, in.Latitude, in.Longitude, in.Hours,
	)
	return scanBranch(row)
}

// ListBranches returns every branch. This is a pure read; seeding happens
// once at startup, never on the read path.
func (p *Postgres) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	query := `SELECT` + branchColumns + ` FROM branches ORDER BY id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, *b)
	}
	return branches, rows.Err()
}
