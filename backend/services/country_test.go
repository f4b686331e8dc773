package services

import (
	"context"
	"path/filepath"
	"testing"

	"salesrep-roster/backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Country{}))
	return db
}

func TestCountryService(t *testing.T) {
	ctx := context.Background()

	seedCountries := []models.Country{
		{Name: "Spain", Region: "Europe"},
		{Name: "Japan", Region: "APAC"},
		{Name: "France", Region: "Europe"},
	}

	t.Run("seed only fills an empty table", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))

		n, err := svc.Seed(ctx, seedCountries)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		n, err = svc.Seed(ctx, seedCountries)
		require.NoError(t, err)
		require.Zero(t, n)

		count, err := svc.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 3, count)
	})

	t.Run("list keeps insertion order and filters by region", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))
		_, err := svc.Seed(ctx, seedCountries)
		require.NoError(t, err)

		all, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Equal(t, []string{"Spain", "Japan", "France"}, names(all))

		europe, err := svc.List(ctx, "Europe")
		require.NoError(t, err)
		require.Equal(t, []string{"Spain", "France"}, names(europe))

		lower, err := svc.List(ctx, "europe")
		require.NoError(t, err)
		require.NotNil(t, lower)
		require.Empty(t, lower)
	})

	t.Run("regions in first-stored order", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))
		_, err := svc.Seed(ctx, seedCountries)
		require.NoError(t, err)

		regions, err := svc.Regions(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Europe", "APAC"}, regions)
	})

	t.Run("create update delete", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))

		country := models.Country{Name: "Chile", Region: "America"}
		require.NoError(t, svc.Create(ctx, &country))
		require.NotZero(t, country.ID)

		updated, err := svc.Update(ctx, country.ID, models.Country{Name: "Chile", Region: "LATAM"})
		require.NoError(t, err)
		require.Equal(t, "LATAM", updated.Region)

		got, err := svc.Get(ctx, country.ID)
		require.NoError(t, err)
		require.Equal(t, "LATAM", got.Region)

		require.NoError(t, svc.Delete(ctx, country.ID))
		require.ErrorIs(t, svc.Delete(ctx, country.ID), ErrCountryNotFound)

		_, err = svc.Get(ctx, country.ID)
		require.ErrorIs(t, err, ErrCountryNotFound)
	})

	t.Run("rejects incomplete countries", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))
		require.ErrorIs(t, svc.Create(ctx, &models.Country{Name: "Nowhere"}), ErrInvalidCountry)
		require.ErrorIs(t, svc.Replace(ctx, []models.Country{{Region: "Europe"}}), ErrInvalidCountry)
	})

	t.Run("replace swaps the table", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))
		_, err := svc.Seed(ctx, seedCountries)
		require.NoError(t, err)

		require.NoError(t, svc.Replace(ctx, []models.Country{{Name: "Kenya", Region: "MEA"}}))

		all, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Equal(t, []string{"Kenya"}, names(all))
	})

	t.Run("duplicates are reported as such", func(t *testing.T) {
		svc := NewCountryService(newTestDB(t))
		_, err := svc.Seed(ctx, seedCountries)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Create(ctx, &models.Country{Name: "Spain", Region: "Europe"}), ErrDuplicateCountry)
		require.NoError(t, svc.Create(ctx, &models.Country{Name: "Spain", Region: "MEA"}))

		all, err := svc.List(ctx, "Europe")
		require.NoError(t, err)
		_, err = svc.Update(ctx, all[0].ID, models.Country{Name: "France", Region: "Europe"})
		require.ErrorIs(t, err, ErrDuplicateCountry)

		err = svc.Replace(ctx, []models.Country{{Name: "Kenya", Region: "MEA"}, {Name: "Kenya", Region: "MEA"}})
		require.ErrorIs(t, err, ErrDuplicateCountry)

		// the failed replace rolled back
		n, err := svc.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 4, n)
	})
}
