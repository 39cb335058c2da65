package recommendation

import "strings"

// genericSeason is returned when a region is missing or matches no keyword.
const genericSeason = "Best time: Spring and Autumn (March-May, September-November)"

// IdealVisitTime maps a region label to a recommended travel window via
// ordered keyword matching, first match wins. This is a heuristic lookup,
// not a climate model.
func IdealVisitTime(region string) string {
	r := strings.ToLower(strings.TrimSpace(region))
	if r == "" {
		return genericSeason
	}
	switch {
	case strings.Contains(r, "europe"):
		return "Best time: May to September"
	case strings.Contains(r, "asia"):
		// Covers both "South Asia" and "Southeast Asia".
		if strings.Contains(r, "south") {
			return "Best time: November to March"
		}
		return "Best time: April to June, September to November"
	case strings.Contains(r, "tropical"), strings.Contains(r, "equator"):
		return "Best time: December to April"
	case strings.Contains(r, "america"):
		if strings.Contains(r, "north") {
			return "Best time: June to September"
		}
		return "Best time: May to October"
	case strings.Contains(r, "africa"):
		return "Best time: October to April"
	}
	return genericSeason
}
