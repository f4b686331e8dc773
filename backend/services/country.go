package services

import (
	"context"
	"strings"

	"salesrep-roster/backend/models"
	"salesrep-roster/backend/system"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CountryService reads and maintains the country records the roster is computed from
type CountryService struct {
	db *gorm.DB
}

// NewCountryService creates a new CountryService
func NewCountryService(db *gorm.DB) *CountryService {
	return &CountryService{db: db}
}

// List returns countries in insertion order. A non-empty region restricts the
// result to that region (exact, case-sensitive match).
func (s *CountryService) List(ctx context.Context, region string) ([]models.Country, error) {
	query := s.db.WithContext(ctx).Order("id ASC")
	if region != "" {
		query = query.Where("region = ?", region)
	}

	countries := []models.Country{}
	if err := query.Find(&countries).Error; err != nil {
		return nil, errors.Wrap(err, "listing countries")
	}
	return countries, nil
}

// Regions returns the distinct regions in the order they were first stored
func (s *CountryService) Regions(ctx context.Context) ([]string, error) {
	var rows []struct {
		Region string
	}
	err := s.db.WithContext(ctx).Model(&models.Country{}).
		Select("region, MIN(id) AS first_id").
		Group("region").
		Order("first_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing regions")
	}

	regions := make([]string, len(rows))
	for i, r := range rows {
		regions[i] = r.Region
	}
	return regions, nil
}

// Count returns the number of stored countries
func (s *CountryService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Country{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "counting countries")
	}
	return n, nil
}

// Get returns the country with the given id
func (s *CountryService) Get(ctx context.Context, id uint) (*models.Country, error) {
	var country models.Country
	err := s.db.WithContext(ctx).First(&country, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCountryNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "loading country %d", id)
	}
	return &country, nil
}

// Create stores a new country
func (s *CountryService) Create(ctx context.Context, country *models.Country) error {
	if err := validateCountry(country); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(country).Error; err != nil {
		return errors.Wrapf(storeError(err), "creating country %s", country.Name)
	}
	return nil
}

// Update replaces the name and region of an existing country
func (s *CountryService) Update(ctx context.Context, id uint, input models.Country) (*models.Country, error) {
	if err := validateCountry(&input); err != nil {
		return nil, err
	}
	country, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	country.Name = input.Name
	country.Region = input.Region
	if err := s.db.WithContext(ctx).Save(country).Error; err != nil {
		return nil, errors.Wrapf(storeError(err), "updating country %d", id)
	}
	return country, nil
}

// Delete removes the country with the given id
func (s *CountryService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Country{}, id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "deleting country %d", id)
	}
	if result.RowsAffected == 0 {
		return ErrCountryNotFound
	}
	return nil
}

// Replace swaps the whole country table for countries inside one transaction
func (s *CountryService) Replace(ctx context.Context, countries []models.Country) error {
	for i := range countries {
		if err := validateCountry(&countries[i]); err != nil {
			return err
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Country{}).Error; err != nil {
			return errors.Wrap(err, "clearing countries")
		}
		for _, c := range countries {
			record := models.Country{Name: c.Name, Region: c.Region}
			if err := tx.Create(&record).Error; err != nil {
				return errors.Wrapf(storeError(err), "importing country %s", c.Name)
			}
		}
		return nil
	})
}

// Seed inserts countries when the table is empty and reports how many were added
func (s *CountryService) Seed(ctx context.Context, countries []models.Country) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	if err := s.Replace(ctx, countries); err != nil {
		return 0, errors.Wrap(err, "seeding countries")
	}
	system.Info("Seeded %d countries", len(countries))
	return len(countries), nil
}

// ErrInvalidCountry is returned when a country lacks a name or region.
var ErrInvalidCountry = errors.New("country name and region are required")

func validateCountry(c *models.Country) error {
	if c.Name == "" || c.Region == "" {
		return ErrInvalidCountry
	}
	return nil
}

// storeError maps a unique index violation on (name, region) to ErrDuplicateCountry
func storeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateCountry
	}
	return err
}
