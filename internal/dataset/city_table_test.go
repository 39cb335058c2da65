package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveAffinityColumn(t *testing.T) {
	table := NewCityTable(nil, []string{"beaches", "culture", "nightlife_score"})

	t.Run("ExactMatch", func(t *testing.T) {
		col, ok := table.ResolveAffinityColumn("culture")
		require.True(t, ok)
		assert.Equal(t, "culture", col)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		col, ok := table.ResolveAffinityColumn("Beaches")
		require.True(t, ok)
		assert.Equal(t, "beaches", col)
	})

	t.Run("SubstringColumnContainsType", func(t *testing.T) {
		col, ok := table.ResolveAffinityColumn("nightlife")
		require.True(t, ok)
		assert.Equal(t, "nightlife_score", col)
	})

	t.Run("SubstringTypeContainsColumn", func(t *testing.T) {
		col, ok := table.ResolveAffinityColumn("cultural sites")
		require.True(t, ok)
		assert.Equal(t, "culture", col)
	})

	t.Run("FirstColumnInTableOrderWins", func(t *testing.T) {
		// Both "beaches" and "culture" are substrings of this label; the
		// earlier dataset column wins.
		col, ok := table.ResolveAffinityColumn("beaches and culture")
		require.True(t, ok)
		assert.Equal(t, "beaches", col)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, ok := table.ResolveAffinityColumn("space tourism")
		assert.False(t, ok)
	})

	t.Run("EmptyType", func(t *testing.T) {
		_, ok := table.ResolveAffinityColumn("")
		assert.False(t, ok)
	})
}

func TestLoadCityTable(t *testing.T) {
	path := writeCSV(t, "cities.csv", `city,country,region,budget_level,short_description,model_score,beaches,culture
Lisbon,Portugal,Southern Europe,low,Sunny capital,0.9,8.5,7.0
Bangkok,Thailand,Southeast Asia,low,Street food heaven,0.8,6.0,9.0
Oslo,Norway,Northern Europe,high,,0.4,,5.0
`)

	table, err := LoadCityTable(path, slog.Default())
	require.NoError(t, err)

	assert.True(t, table.HasCity)
	assert.True(t, table.HasCountry)
	assert.True(t, table.HasModelScore)
	assert.Equal(t, "budget_level", table.BudgetColumn)
	assert.False(t, table.BudgetNumeric)
	assert.ElementsMatch(t, []string{"beaches", "culture"}, table.AffinityColumns)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, "Lisbon", table.Records[0].City)
	assert.Equal(t, "Portugal", table.Records[0].Country)
	assert.Equal(t, 0.9, table.Records[0].ModelScore)
	assert.Equal(t, 8.5, table.Records[0].Affinities["beaches"])

	// Oslo's empty beaches cell is filled with the column mean.
	assert.InDelta(t, (8.5+6.0)/2, table.Records[2].Affinities["beaches"], 1e-9)
}

func TestLoadCityTableNumericBudget(t *testing.T) {
	path := writeCSV(t, "cities.csv", `city,country,cost_level,model_score,beaches
Lisbon,Portugal,1,0.9,8.5
Oslo,Norway,3,0.4,2.0
`)

	table, err := LoadCityTable(path, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "cost_level", table.BudgetColumn)
	assert.True(t, table.BudgetNumeric)
	assert.Equal(t, "1", table.Records[0].BudgetLevel)
}

func TestLoadCityTableMissingColumns(t *testing.T) {
	path := writeCSV(t, "cities.csv", `city,beaches
Lisbon,8.5
`)

	table, err := LoadCityTable(path, slog.Default())
	require.NoError(t, err)
	assert.True(t, table.HasCity)
	assert.False(t, table.HasCountry)
	assert.False(t, table.HasModelScore)
	assert.Empty(t, table.BudgetColumn)
}

func TestLoadCityTableMissingFile(t *testing.T) {
	_, err := LoadCityTable(filepath.Join(t.TempDir(), "nope.csv"), slog.Default())
	assert.Error(t, err)
}

func TestNewCityTableReconciles(t *testing.T) {
	table := NewCityTable([]types.CityRecord{{City: "A", Country: "B"}}, []string{"beaches"})
	col, ok := table.ResolveAffinityColumn("beaches")
	require.True(t, ok)
	assert.Equal(t, "beaches", col)
}
