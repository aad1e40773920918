package content

// DefaultIcon is used for categories without a dedicated icon.
const DefaultIcon = "🏷️"

var categoryIcons = map[string]string{
	"Nature & Outdoors":            "🏞️",
	"Spiritual & Cultural":         "🛕",
	"Relaxation & Leisure":         "🏖️",
	"Urban & Fun":                  "🛍️",
	"Adventure & Activities":       "🧗",
	"Offbeat & Mystery":            "👻",
	"Instagrammable / Photo Spots": "📸",
}

// IconFor returns the emoji for category.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}
