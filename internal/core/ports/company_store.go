package ports

import (
	"context"

	"orgchart/internal/core/domain/model/company"
)

// CompanyStore persists whole-company snapshots.
type CompanyStore interface {
	// Save replaces the stored snapshot of c.
	Save(ctx context.Context, c *company.Company) error

	// Load rebuilds the company called name.
	// Returns ObjectNotFoundError if no snapshot exists.
	Load(ctx context.Context, name string) (*company.Company, error)
}
