package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

// SupportedTravelTypes lists the travel types the dataset is expected to
// carry an affinity column for. Unlisted types still resolve through the
// substring fallback at request time.
var SupportedTravelTypes = []string{
	"culture", "adventure", "nature", "beaches",
	"nightlife", "cuisine", "wellness", "urban",
}

// BudgetTiers are the accepted budget labels, lowest first.
var BudgetTiers = []string{"low", "medium", "high"}

// budgetColumnCandidates is the fixed priority order for locating a
// budget-like column in the dataset.
var budgetColumnCandidates = []string{"budget_level", "budget", "cost_level", "price_level"}

// reservedColumns are dataset columns that are never affinity columns.
var reservedColumns = map[string]struct{}{
	"id":                {},
	"city":              {},
	"country":           {},
	"region":            {},
	"short_description": {},
	"model_score":       {},
	"latitude":          {},
	"longitude":         {},
}

// CityTable is the immutable in-memory city dataset. It is loaded once at
// startup; concurrent readers share it without locking because nothing
// mutates it after load.
type CityTable struct {
	Records         []types.CityRecord
	AffinityColumns []string // dataset column order, drives the substring fallback
	HasCity         bool
	HasCountry      bool
	HasModelScore   bool
	BudgetColumn    string // "" when the dataset has no budget-like column
	BudgetNumeric   bool

	// resolved maps travel types to affinity columns. Built once at load
	// time so column resolution cannot shift between requests.
	resolved map[string]string
}

// NewCityTable builds a table from pre-parsed records, reconciling the
// affinity registry against the given column order. Used by tests and by
// the CSV loader.
func NewCityTable(records []types.CityRecord, affinityColumns []string) *CityTable {
	t := &CityTable{
		Records:         records,
		AffinityColumns: affinityColumns,
		HasCity:         true,
		HasCountry:      true,
		HasModelScore:   true,
	}
	t.reconcile()
	return t
}

// reconcile pre-resolves every supported travel type against the affinity
// column list. The substring heuristic is a one-time schema reconciliation
// step, not a per-request lookup.
func (t *CityTable) reconcile() {
	t.resolved = make(map[string]string, len(SupportedTravelTypes))
	for _, tt := range SupportedTravelTypes {
		if col, ok := t.matchAffinityColumn(tt); ok {
			t.resolved[tt] = col
		}
	}
}

// ResolveAffinityColumn maps a travel type to the affinity column that
// scores it. Exact (case-insensitive) name match wins; otherwise the first
// column, in dataset order, whose name contains the travel type or is
// contained by it. Returns false when no column matches.
func (t *CityTable) ResolveAffinityColumn(travelType string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(travelType))
	if needle == "" {
		return "", false
	}
	if col, ok := t.resolved[needle]; ok {
		return col, true
	}
	return t.matchAffinityColumn(needle)
}

func (t *CityTable) matchAffinityColumn(travelType string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(travelType))
	for _, col := range t.AffinityColumns {
		if strings.ToLower(col) == needle {
			return col, true
		}
	}
	for _, col := range t.AffinityColumns {
		lc := strings.ToLower(col)
		if strings.Contains(lc, needle) || strings.Contains(needle, lc) {
			return col, true
		}
	}
	return "", false
}

// AffinityValues returns the given affinity column as a dense slice in
// record order.
func (t *CityTable) AffinityValues(column string) []float64 {
	vals := make([]float64, len(t.Records))
	for i, rec := range t.Records {
		vals[i] = rec.Affinities[column]
	}
	return vals
}

// ModelScores returns the precomputed model score column in record order.
func (t *CityTable) ModelScores() []float64 {
	vals := make([]float64, len(t.Records))
	for i, rec := range t.Records {
		vals[i] = rec.ModelScore
	}
	return vals
}

// Len returns the number of records in the table.
func (t *CityTable) Len() int {
	return len(t.Records)
}

// LoadCityTable reads the city dataset CSV into an immutable CityTable.
// Numeric cells that are empty are filled with the column mean, matching
// the offline preprocessing the model was trained against. Columns whose
// non-empty cells all parse as numbers and that are not reserved become
// affinity columns.
func LoadCityTable(path string, logger *slog.Logger) (*CityTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open city dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse city dataset: %w", err)
	}
	if len(rows) == 0 {
		logger.Warn("City dataset is empty", slog.String("path", path))
		return &CityTable{resolved: map[string]string{}}, nil
	}

	header := make([]string, len(rows[0]))
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
		index[header[i]] = i
	}
	data := rows[1:]

	cityIdx, hasCity := index["city"]
	countryIdx, hasCountry := index["country"]
	regionIdx, hasRegion := index["region"]
	descIdx, hasDesc := index["short_description"]
	scoreIdx, hasScore := index["model_score"]
	if !hasCity || !hasCountry {
		logger.Warn("City dataset is missing required columns",
			slog.Bool("has_city", hasCity), slog.Bool("has_country", hasCountry))
	}

	budgetIdx := -1
	budgetColumn := ""
	for _, candidate := range budgetColumnCandidates {
		if i, ok := index[candidate]; ok {
			budgetIdx = i
			budgetColumn = candidate
			break
		}
	}

	// Columns where every non-empty cell parses as a float are numeric;
	// the non-reserved ones become affinity columns.
	numericColumns := make(map[int]bool, len(header))
	for col := range header {
		numericColumns[col] = columnIsNumeric(data, col)
	}

	var affinityColumns []string
	affinityIdx := make(map[string]int)
	for col, name := range header {
		if _, reserved := reservedColumns[name]; reserved {
			continue
		}
		if col == budgetIdx || !numericColumns[col] {
			continue
		}
		affinityColumns = append(affinityColumns, name)
		affinityIdx[name] = col
	}

	// Column means, used to fill empty numeric cells.
	means := make(map[int]float64, len(header))
	for col, numeric := range numericColumns {
		if numeric {
			means[col] = columnMean(data, col)
		}
	}

	records := make([]types.CityRecord, 0, len(data))
	for _, row := range data {
		rec := types.CityRecord{Affinities: make(map[string]float64, len(affinityColumns))}
		if hasCity {
			rec.City = cell(row, cityIdx)
		}
		if hasCountry {
			rec.Country = cell(row, countryIdx)
		}
		if hasRegion {
			rec.Region = cell(row, regionIdx)
		}
		if hasDesc {
			rec.ShortDescription = cell(row, descIdx)
		}
		if hasScore {
			rec.ModelScore = numericCell(row, scoreIdx, means[scoreIdx])
		}
		if budgetIdx >= 0 {
			rec.BudgetLevel = cell(row, budgetIdx)
		}
		for name, col := range affinityIdx {
			rec.Affinities[name] = numericCell(row, col, means[col])
		}
		records = append(records, rec)
	}

	table := &CityTable{
		Records:         records,
		AffinityColumns: affinityColumns,
		HasCity:         hasCity,
		HasCountry:      hasCountry,
		HasModelScore:   hasScore,
		BudgetColumn:    budgetColumn,
		BudgetNumeric:   budgetIdx >= 0 && numericColumns[budgetIdx],
	}
	table.reconcile()

	logger.Info("City dataset loaded",
		slog.String("path", path),
		slog.Int("rows", len(records)),
		slog.Int("affinity_columns", len(affinityColumns)),
		slog.String("budget_column", budgetColumn),
		slog.Bool("has_model_score", hasScore),
	)
	return table, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func numericCell(row []string, col int, fallback float64) float64 {
	raw := cell(row, col)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func columnIsNumeric(data [][]string, col int) bool {
	nonEmpty := 0
	for _, row := range data {
		raw := cell(row, col)
		if raw == "" {
			continue
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return false
		}
		nonEmpty++
	}
	return nonEmpty > 0
}

func columnMean(data [][]string, col int) float64 {
	sum := 0.0
	count := 0
	for _, row := range data {
		raw := cell(row, col)
		if raw == "" {
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
