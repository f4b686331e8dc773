package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"salesrep-roster/backend/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func TestOptimalCmd(t *testing.T) {
	t.Run("built-in list", func(t *testing.T) {
		var roster []models.RosterEntry
		require.NoError(t, json.Unmarshal(run(t, optimalCmd(), "--region", "Europe"), &roster))

		// 19 countries: three representatives with 7, 6 and 6
		require.Len(t, roster, 3)
		require.Equal(t, 7, roster[0].CountryCount)
		require.Equal(t, 6, roster[1].CountryCount)
		require.Equal(t, 6, roster[2].CountryCount)
	})

	t.Run("country file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
countries:
  - {name: Spain, region: Europe}
  - {name: Japan, region: Asia}
  - {name: France, region: Europe}
`), 0644))

		out := run(t, optimalCmd(), "--file", path)
		require.JSONEq(t, `[
			{"region":"Europe","countryList":["Spain","France"],"countryCount":2},
			{"region":"Asia","countryList":["Japan"],"countryCount":1}
		]`, string(out))
	})
}

func TestSalesRepCmd(t *testing.T) {
	out := run(t, salesRepCmd())

	var ranges []models.SalesRepRange
	require.NoError(t, json.Unmarshal(out, &ranges))
	require.Equal(t, []models.SalesRepRange{
		{Region: "America", MinSalesRep: 3, MaxSalesRep: 5},
		{Region: "APAC", MinSalesRep: 2, MaxSalesRep: 4},
		{Region: "Europe", MinSalesRep: 3, MaxSalesRep: 6},
		{Region: "MEA", MinSalesRep: 2, MaxSalesRep: 3},
	}, ranges)
}

func TestSeedCmd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROSTER_DB_PATH", filepath.Join(dir, "roster.db"))
	configPath := ""

	out := run(t, seedCmd(&configPath))
	require.Equal(t, "seeded 57 countries\n", string(out))

	out = run(t, seedCmd(&configPath))
	require.Equal(t, "seeded 0 countries\n", string(out))
}

func TestCloseDatabase(t *testing.T) {
	db, err := openDatabase(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	closeDatabase(db)
	require.Error(t, sqlDB.Ping())
}
