package matcher

import (
	"strings"

	"persona-matcher/internal/domain"
)

// The eight artwork theme buckets. "Other" means "no strong preference" and
// scores neutral rather than being penalized.
const (
	ThemeAnimal    = "Animal"
	ThemeFlowers   = "Flowers/Plants"
	ThemeNature    = "Nature/Landscape"
	ThemeSymbols   = "Symbols/Emblems"
	ThemePattern   = "Pattern/Abstract"
	ThemeVehicles  = "Vehicles/Transport"
	ThemeFoodDrink = "Food & Drink"
	ThemeOther     = "Other"
)

// Themes returns the closed set of valid theme labels in display order.
func Themes() []string {
	return []string{
		ThemeAnimal,
		ThemeFlowers,
		ThemeNature,
		ThemeSymbols,
		ThemePattern,
		ThemeVehicles,
		ThemeFoodDrink,
		ThemeOther,
	}
}

// KnownTheme reports whether label is one of the eight buckets,
// case-insensitively.
func KnownTheme(label string) bool {
	for _, t := range Themes() {
		if strings.EqualFold(t, label) {
			return true
		}
	}
	return false
}

// themeKeywords drives the fuzzy fallback: artwork names rarely carry the
// category label verbatim, so each bucket lists the motifs that show up in
// real artwork titles. "Other" stays empty on purpose.
var themeKeywords = map[string][]string{
	ThemeAnimal: {
		"leopard", "tiger", "lion", "elephant", "butterfly", "bird", "owl",
		"horse", "cat", "dog", "peacock", "dragonfly", "zebra", "giraffe",
		"panda", "fish", "flamingo", "wolf", "deer", "hummingbird",
	},
	ThemeFlowers: {
		"rose", "floral", "flower", "tulip", "lotus", "peony", "blossom",
		"garden", "botanical", "leaf", "fern", "orchid", "daisy", "poppy",
		"magnolia", "wildflower",
	},
	ThemeNature: {
		"mountain", "forest", "ocean", "sunset", "sunrise", "river", "sky",
		"desert", "meadow", "waterfall", "beach", "moonlit", "starry",
		"canyon", "island",
	},
	ThemeSymbols: {
		"heart", "star", "crown", "anchor", "compass", "feather", "skull",
		"key", "arrow", "medallion", "emblem", "talisman",
	},
	ThemePattern: {
		"mosaic", "geometric", "abstract", "paisley", "mandala", "stripe",
		"dot", "swirl", "patchwork", "kaleidoscope", "tapestry", "ikat",
	},
	ThemeVehicles: {
		"car", "bicycle", "train", "plane", "scooter", "ship", "motorcycle",
		"balloon", "vespa", "sailboat", "carriage",
	},
	ThemeFoodDrink: {
		"coffee", "wine", "cupcake", "fruit", "tea", "chocolate", "cocktail",
		"lemon", "cherry", "donut", "macaron", "berry",
	},
	ThemeOther: {},
}

// themeCoefficients are the fixed per-theme style vectors used for the
// personality cosine similarity, in [boldness, elegance, whimsy] order.
var themeCoefficients = map[string][3]float64{
	ThemeAnimal:    {0.8, 0.4, 0.7},
	ThemeFlowers:   {0.3, 0.9, 0.5},
	ThemeNature:    {0.5, 0.7, 0.6},
	ThemeSymbols:   {0.6, 0.8, 0.4},
	ThemePattern:   {0.7, 0.6, 0.8},
	ThemeVehicles:  {0.9, 0.3, 0.6},
	ThemeFoodDrink: {0.5, 0.4, 0.9},
	ThemeOther:     {0.5, 0.5, 0.5},
}

// canonicalTheme resolves a label to its bucket constant, or "" if unknown.
func canonicalTheme(label string) string {
	for _, t := range Themes() {
		if strings.EqualFold(t, label) {
			return t
		}
	}
	return ""
}

// ThemeCoefficients returns the style vector for a theme, falling back to the
// neutral "Other" vector for unknown labels.
func ThemeCoefficients(theme string) [3]float64 {
	if c, ok := themeCoefficients[canonicalTheme(theme)]; ok {
		return c
	}
	return themeCoefficients[ThemeOther]
}

// fuzzyThemeScore scores a product against a theme without requiring category
// equality. Exact category match is 100. Keyword hits in the artwork name
// count more than hits elsewhere in the product text; a themed query with no
// hits at all floors at 20 so personality and sentiment can still surface it.
func fuzzyThemeScore(p domain.Product, theme string) int {
	canonical := canonicalTheme(theme)
	if canonical == "" {
		return noHitThemeScore
	}
	if strings.EqualFold(p.Category, canonical) {
		return 100
	}
	if canonical == ThemeOther {
		return neutralThemeScore
	}

	artwork := strings.ToLower(p.ArtworkName)
	fullText := strings.ToLower(p.ArtworkName + " " + p.ProductName)

	score := 0
	for _, kw := range themeKeywords[canonical] {
		switch {
		case strings.Contains(artwork, kw):
			score += artworkKeywordPoints
		case strings.Contains(fullText, kw):
			score += productTextKeywordPoints
		}
	}
	if score == 0 {
		return noHitThemeScore
	}
	score += fuzzyBaseScore
	if score > 100 {
		score = 100
	}
	return score
}

const (
	artworkKeywordPoints     = 30
	productTextKeywordPoints = 15
	fuzzyBaseScore           = 40
	neutralThemeScore        = 50
	noHitThemeScore          = 20
)
