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

// ItineraryTable holds the optional pre-authored itinerary templates in
// dataset order. Like the city table it is loaded once and then read-only.
type ItineraryTable struct {
	Entries []types.ItineraryTemplateEntry
}

// LoadItineraryTable reads the itinerary-template CSV. Expected columns:
// destination, day, morning, afternoon, evening. Rows with an empty
// destination continue the preceding city block.
func LoadItineraryTable(path string, logger *slog.Logger) (*ItineraryTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open itinerary templates: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse itinerary templates: %w", err)
	}
	if len(rows) == 0 {
		return &ItineraryTable{}, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	destIdx, ok := index["destination"]
	if !ok {
		return nil, fmt.Errorf("itinerary templates missing destination column")
	}
	dayIdx := columnOrMissing(index, "day")
	morningIdx := columnOrMissing(index, "morning")
	afternoonIdx := columnOrMissing(index, "afternoon")
	eveningIdx := columnOrMissing(index, "evening")

	entries := make([]types.ItineraryTemplateEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		day := 0
		if raw := cell(row, dayIdx); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				day = v
			}
		}
		entries = append(entries, types.ItineraryTemplateEntry{
			Destination: cell(row, destIdx),
			Day:         day,
			Morning:     cell(row, morningIdx),
			Afternoon:   cell(row, afternoonIdx),
			Evening:     cell(row, eveningIdx),
		})
	}

	logger.Info("Itinerary templates loaded",
		slog.String("path", path), slog.Int("rows", len(entries)))
	return &ItineraryTable{Entries: entries}, nil
}

func columnOrMissing(index map[string]int, name string) int {
	if i, ok := index[name]; ok {
		return i
	}
	return -1
}

// DaysFor locates the contiguous template block for the given city.
// A block starts at a row whose destination equals the city
// (case-insensitive) and extends over the following rows with an empty
// destination, until the next non-empty destination or the end of the
// table. Returns nil when the city has no block.
func (t *ItineraryTable) DaysFor(city string) []types.ItineraryTemplateEntry {
	if t == nil {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(city))
	if needle == "" {
		return nil
	}

	var block []types.ItineraryTemplateEntry
	matched := false
	for _, entry := range t.Entries {
		dest := strings.ToLower(strings.TrimSpace(entry.Destination))
		switch {
		case dest == needle:
			matched = true
			block = append(block, entry)
		case matched && dest == "":
			block = append(block, entry)
		case matched:
			return block
		}
	}
	return block
}
