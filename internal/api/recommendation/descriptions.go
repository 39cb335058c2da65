package recommendation

// travelTypeDescriptions supplies a description for rows that have no
// short_description of their own, keyed by travel type.
var travelTypeDescriptions = map[string]string{
	"beaches":   "Perfect for beach lovers! Enjoy pristine coastlines, crystal-clear waters, and relaxing beachside activities.",
	"culture":   "Rich in history and heritage! Explore museums, historical sites, and immerse yourself in local traditions.",
	"adventure": "Thrilling experiences await! Perfect for adrenaline seekers with exciting outdoor activities and adventures.",
	"nature":    "Nature's paradise! Discover breathtaking landscapes, wildlife, and serene natural environments.",
	"nightlife": "Vibrant nightlife scene! Experience exciting nightlife, entertainment, and social activities.",
	"cuisine":   "Foodie's dream destination! Savor authentic local flavors and culinary experiences.",
	"wellness":  "Rejuvenate and relax! Ideal for wellness retreats, spas, and peaceful getaways.",
	"urban":     "Modern city experience! Explore urban attractions, shopping, and contemporary culture.",
	"mood":      "Perfect for your current mood! A versatile destination offering diverse experiences.",
}

const genericDescription = "A wonderful destination offering unique experiences and memorable moments."

func descriptionFor(travelType string) string {
	if d, ok := travelTypeDescriptions[travelType]; ok {
		return d
	}
	return genericDescription
}
