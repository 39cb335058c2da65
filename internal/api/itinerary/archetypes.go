package itinerary

// dayArchetype is one canonical day of the built-in weekly template.
type dayArchetype struct {
	Morning    string
	Afternoon  string
	Evening    string
	Highlights string
}

// dayArchetypes is the built-in cyclic template: seven canonical day
// shapes, so any trip length gets a plausible plan that does not repeat
// within a week. Day i (1-based) uses archetype ((i-1) mod 7) + 1.
var dayArchetypes = []dayArchetype{
	{
		Morning:    "Arrive, check in and get your bearings around the neighborhood",
		Afternoon:  "Orientation walk through the city center and main squares",
		Evening:    "Relaxed welcome dinner near your accommodation",
		Highlights: "Arrival and first impressions of the city",
	},
	{
		Morning:    "Guided visit of the top landmarks and viewpoints",
		Afternoon:  "City sightseeing and photo stops at iconic spots",
		Evening:    "Sunset viewpoint followed by a stroll along the old town",
		Highlights: "The city's signature sights in one day",
	},
	{
		Morning:    "Breakfast at a local market and street-food tasting",
		Afternoon:  "Food tour through the historic eating districts",
		Evening:    "Dinner at a traditional restaurant with regional specialties",
		Highlights: "A full day of local food exploration",
	},
	{
		Morning:    "Museum or gallery visit before the crowds arrive",
		Afternoon:  "Cultural and heritage tour of temples, palaces or cathedrals",
		Evening:    "Live local music, theatre or a cultural performance",
		Highlights: "Immersion in local culture and heritage",
	},
	{
		Morning:    "Day trip to nearby nature: park, coast or mountains",
		Afternoon:  "Easy hike, beach time or garden visit at your own pace",
		Evening:    "Quiet evening, spa or wellness break",
		Highlights: "Nature and relaxation away from the bustle",
	},
	{
		Morning:    "Browse local markets and artisan workshops",
		Afternoon:  "Shopping in the main retail and design districts",
		Evening:    "Cafe hopping and people watching in a lively quarter",
		Highlights: "Markets, crafts and shopping finds",
	},
	{
		Morning:    "Adventure activity: cycling, kayaking or a climbing tour",
		Afternoon:  "Free time to revisit favorite spots and pick up souvenirs",
		Evening:    "Farewell dinner with a view over the city",
		Highlights: "Adventure and a memorable send-off",
	},
}

// basicActivities is the degraded single-field plan rotation, used only
// when richer generation failed.
var basicActivities = []string{
	"City sightseeing & landmarks",
	"Local food exploration",
	"Cultural & heritage tour",
	"Nature & relaxation",
	"Shopping & markets",
	"Adventure activities",
	"Leisure & cafe hopping",
}
