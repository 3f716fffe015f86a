package companyrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/ports"
	"orgchart/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CompanyStore = (*GormCompanyStore)(nil)

// GormCompanyStore implements ports.CompanyStore using GORM.
type GormCompanyStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormCompanyStore creates a store on db.
func NewGormCompanyStore(db *gorm.DB) *GormCompanyStore {
	return &GormCompanyStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Save replaces the stored snapshot of c in a single transaction.
func (s *GormCompanyStore) Save(ctx context.Context, c *company.Company) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c, s.now())
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CompanyDTO{}, "name = ?", dto.Name).Error; err != nil {
			return fmt.Errorf("delete previous snapshot: %w", err)
		}
		if err := tx.Create(&dto).Error; err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
}

// Load restores the company called name.
// Returns ObjectNotFoundError when no snapshot exists.
func (s *GormCompanyStore) Load(ctx context.Context, name string) (*company.Company, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto CompanyDTO
	err := s.db.WithContext(ctx).
		Preload("Departments", byPosition).
		Preload("Departments.Employees", byPosition).
		Preload("Departments.Employees.Adjustments", byPosition).
		Preload("Projects", byPosition).
		First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the snapshot of the company called name, if any.
func (s *GormCompanyStore) Delete(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Delete(&CompanyDTO{}, "name = ?", name).Error
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
