package dataset

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

func templateFixture() *ItineraryTable {
	return &ItineraryTable{Entries: []types.ItineraryTemplateEntry{
		{Destination: "Rome", Day: 1, Morning: "Colosseum"},
		{Destination: "", Day: 2, Morning: "Vatican"},
		{Destination: "", Day: 3, Morning: "Trastevere"},
		{Destination: "Paris", Day: 1, Morning: "Louvre"},
		{Destination: "", Day: 2, Morning: "Montmartre"},
	}}
}

func TestDaysFor(t *testing.T) {
	table := templateFixture()

	t.Run("BlockWithContinuationRows", func(t *testing.T) {
		block := table.DaysFor("Rome")
		require.Len(t, block, 3)
		assert.Equal(t, "Colosseum", block[0].Morning)
		assert.Equal(t, "Trastevere", block[2].Morning)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		block := table.DaysFor("PARIS")
		require.Len(t, block, 2)
		assert.Equal(t, "Louvre", block[0].Morning)
	})

	t.Run("BlockEndsAtNextDestination", func(t *testing.T) {
		block := table.DaysFor("Rome")
		for _, entry := range block {
			assert.NotEqual(t, "Louvre", entry.Morning)
		}
	})

	t.Run("UnknownCity", func(t *testing.T) {
		assert.Empty(t, table.DaysFor("Tokyo"))
	})

	t.Run("EmptyCity", func(t *testing.T) {
		assert.Empty(t, table.DaysFor(""))
	})

	t.Run("NilTable", func(t *testing.T) {
		var nilTable *ItineraryTable
		assert.Empty(t, nilTable.DaysFor("Rome"))
	})
}

func TestLoadItineraryTable(t *testing.T) {
	path := writeCSV(t, "itineraries.csv", `destination,day,morning,afternoon,evening
Rome,1,Colosseum,Forum,Trastevere
,2,Vatican,Castel Sant'Angelo,Opera
Paris,1,Louvre,Seine walk,Eiffel Tower
`)

	table, err := LoadItineraryTable(path, slog.Default())
	require.NoError(t, err)
	require.Len(t, table.Entries, 3)
	assert.Equal(t, "Rome", table.Entries[0].Destination)
	assert.Equal(t, 2, table.Entries[1].Day)
	assert.Equal(t, "", table.Entries[1].Destination)
	assert.Equal(t, "Eiffel Tower", table.Entries[2].Evening)
}

func TestLoadItineraryTableMissingDestinationColumn(t *testing.T) {
	path := writeCSV(t, "bad.csv", `city,day
Rome,1
`)
	_, err := LoadItineraryTable(path, slog.Default())
	assert.Error(t, err)
}
