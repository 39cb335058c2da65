package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

func testTable(t *testing.T) *dataset.CityTable {
	t.Helper()
	records := make([]types.CityRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, types.CityRecord{
			City:       fmt.Sprintf("City%d", i),
			Country:    fmt.Sprintf("Country%d", i),
			Region:     "Western Europe",
			ModelScore: float64(i),
			Affinities: map[string]float64{
				"beaches": float64(10 - i),
				"culture": float64(i),
			},
		})
	}
	return dataset.NewCityTable(records, []string{"beaches", "culture"})
}

func TestMinMaxNormalize(t *testing.T) {
	t.Run("RescalesToUnitInterval", func(t *testing.T) {
		out := minMaxNormalize([]float64{0, 5, 10})
		assert.Equal(t, []float64{0, 0.5, 1}, out)
	})

	t.Run("MaxMapsToOneMinToZero", func(t *testing.T) {
		out := minMaxNormalize([]float64{3, 9, 7})
		assert.Equal(t, 0.0, out[0])
		assert.Equal(t, 1.0, out[1])
		for _, v := range out {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("ConstantColumnIsNeutral", func(t *testing.T) {
		out := minMaxNormalize([]float64{4, 4, 4})
		for _, v := range out {
			assert.Equal(t, 0.5, v)
		}
	})

	t.Run("SingleRowIsNeutral", func(t *testing.T) {
		assert.Equal(t, []float64{0.5}, minMaxNormalize([]float64{42}))
	})
}

func TestBlendWeights(t *testing.T) {
	assert.Equal(t, 1.0, modelWeight+affinityWeight+budgetWeight)

	// One row: every normalized signal collapses to its neutral midpoint,
	// so the blend lands exactly on 0.5.
	table := dataset.NewCityTable([]types.CityRecord{{
		City:       "Solo",
		Country:    "Nowhere",
		ModelScore: 7,
		Affinities: map[string]float64{"beaches": 3},
	}}, []string{"beaches"})
	service := NewService(table, slog.Default())

	rows, err := service.blendScores("beaches", "low")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.5, rows[0].score, 1e-9)
}

func TestRecommendValidation(t *testing.T) {
	service := NewService(testTable(t), slog.Default())
	ctx := context.Background()

	t.Run("EmptyTravelType", func(t *testing.T) {
		_, err := service.Recommend(ctx, "", "low", 5)
		var valErr *types.ValidationError
		require.Error(t, err)
		assert.True(t, errors.As(err, &valErr))
		assert.Equal(t, "travel_type", valErr.Field)
	})

	t.Run("EmptyBudgetLevel", func(t *testing.T) {
		_, err := service.Recommend(ctx, "beaches", "", 5)
		var valErr *types.ValidationError
		require.Error(t, err)
		assert.True(t, errors.As(err, &valErr))
		assert.Equal(t, "budget_level", valErr.Field)
	})
}

func TestRecommendTopN(t *testing.T) {
	service := NewService(testTable(t), slog.Default())

	results, err := service.Recommend(context.Background(), "beaches", "low", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.NotEmpty(t, res.Description)
		assert.NotEmpty(t, res.IdealTime)
	}
	// beaches affinity is highest for the first table rows
	assert.Equal(t, "City0", results[0].City)
}

func TestRecommendIdempotent(t *testing.T) {
	service := NewService(testTable(t), slog.Default())
	ctx := context.Background()

	first, err := service.Recommend(ctx, "culture", "medium", 5)
	require.NoError(t, err)
	second, err := service.Recommend(ctx, "culture", "medium", 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendDeduplicates(t *testing.T) {
	records := []types.CityRecord{
		{City: "Paris", Country: "France", ModelScore: 1, Affinities: map[string]float64{"beaches": 10}},
		{City: "Paris", Country: "France", ModelScore: 1, Affinities: map[string]float64{"beaches": 2}},
		{City: "Rome", Country: "Italy", ModelScore: 1, Affinities: map[string]float64{"beaches": 5}},
		{City: "Nice", Country: "France", ModelScore: 1, Affinities: map[string]float64{"beaches": 0}},
	}
	table := dataset.NewCityTable(records, []string{"beaches"})
	service := NewService(table, slog.Default())

	results, err := service.Recommend(context.Background(), "beaches", "low", 10)
	require.NoError(t, err)

	seen := 0
	for _, res := range results {
		if res.City == "Paris" && res.Country == "France" {
			seen++
		}
	}
	assert.Equal(t, 1, seen, "duplicate city+country rows must collapse to one")
	// The surviving Paris row is the higher-scored one, so it ranks first.
	assert.Equal(t, "Paris", results[0].City)
}

func TestRecommendEmptyTable(t *testing.T) {
	table := dataset.NewCityTable(nil, nil)
	service := NewService(table, slog.Default())

	results, err := service.Recommend(context.Background(), "beaches", "low", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommendAffinityFallback(t *testing.T) {
	service := NewService(testTable(t), slog.Default())

	t.Run("SubstringMatch", func(t *testing.T) {
		// "cultural sites" resolves to the "culture" column via substring.
		rows, err := service.blendScores("cultural sites", "low")
		require.NoError(t, err)
		// culture is monotonically increasing, so the last row normalizes to 1.0
		last := rows[len(rows)-1]
		first := rows[0]
		assert.Greater(t, last.score, first.score)
	})

	t.Run("NoMatchUsesPessimisticConstant", func(t *testing.T) {
		rows, err := service.blendScores("space tourism", "low")
		require.NoError(t, err)
		// All rows share the same 0.3 affinity signal; differences come
		// from the model score alone.
		require.NotEmpty(t, rows)
	})
}

func TestBudgetSignal(t *testing.T) {
	t.Run("TextColumnBinaryMatch", func(t *testing.T) {
		records := []types.CityRecord{
			{City: "A", Country: "X", BudgetLevel: "Low"},
			{City: "B", Country: "Y", BudgetLevel: "high"},
		}
		table := dataset.NewCityTable(records, nil)
		table.BudgetColumn = "budget_level"
		service := NewService(table, slog.Default())

		signal := service.budgetSignal("low")
		assert.Equal(t, []float64{1.0, 0.0}, signal)
	})

	t.Run("NumericColumnGradualMatch", func(t *testing.T) {
		records := []types.CityRecord{
			{City: "A", Country: "X", BudgetLevel: "1"},
			{City: "B", Country: "Y", BudgetLevel: "2"},
			{City: "C", Country: "Z", BudgetLevel: "3"},
		}
		table := dataset.NewCityTable(records, nil)
		table.BudgetColumn = "budget_level"
		table.BudgetNumeric = true
		service := NewService(table, slog.Default())

		signal := service.budgetSignal("low")
		assert.InDelta(t, 1.0, signal[0], 1e-9)
		assert.InDelta(t, 0.5, signal[1], 1e-9)
		assert.InDelta(t, 0.0, signal[2], 1e-9)
	})

	t.Run("MissingColumnIsNeutral", func(t *testing.T) {
		service := NewService(testTable(t), slog.Default())
		signal := service.budgetSignal("low")
		for _, v := range signal {
			assert.Equal(t, 0.5, v)
		}
	})
}

func TestRecommendFallbackLadder(t *testing.T) {
	t.Run("ScoringFailureRanksByModelScore", func(t *testing.T) {
		table := testTable(t)
		table.HasCountry = false // blendScores rejects the table shape
		service := NewService(table, slog.Default())

		results, err := service.Recommend(context.Background(), "beaches", "low", 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		// Raw model score is highest for the last fixture rows.
		assert.Equal(t, "City9", results[0].City)
		assert.Equal(t, "City8", results[1].City)
	})

	t.Run("NoModelScoreSamplesAtNeutralScore", func(t *testing.T) {
		table := testTable(t)
		table.HasCountry = false
		table.HasModelScore = false
		service := NewService(table, slog.Default())

		results, err := service.Recommend(context.Background(), "beaches", "low", 4)
		require.NoError(t, err)
		require.Len(t, results, 4)
		for _, res := range results {
			assert.Equal(t, 0.5, res.FinalScore)
			assert.NotEmpty(t, res.Description)
		}
	})
}

func TestIdealVisitTime(t *testing.T) {
	tests := []struct {
		name   string
		region string
		want   string
	}{
		{"SoutheastAsia", "Southeast Asia", "Best time: November to March"},
		{"EastAsia", "East Asia", "Best time: April to June, September to November"},
		{"Europe", "Western Europe", "Best time: May to September"},
		{"NorthAmerica", "North America", "Best time: June to September"},
		{"SouthAmerica", "South America", "Best time: May to October"},
		{"Tropical", "Tropical Islands", "Best time: December to April"},
		{"Africa", "Sub-Saharan Africa", "Best time: October to April"},
		{"MissingRegion", "", genericSeason},
		{"UnknownRegion", "Antarctica", genericSeason},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IdealVisitTime(tc.region))
		})
	}
}

func TestDescriptionFor(t *testing.T) {
	assert.Contains(t, descriptionFor("beaches"), "beach")
	assert.Equal(t, genericDescription, descriptionFor("spelunking"))
}
