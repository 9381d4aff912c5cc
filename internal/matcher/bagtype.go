package matcher

import "strings"

// Bag types in detection order. Longer, more specific names first so that
// "crossbody satchel" style names resolve to the leading shape.
var bagTypes = []string{
	"crossbody",
	"satchel",
	"hobo",
	"wallet",
	"clutch",
	"pouch",
	"tote",
}

// BagTypeFallback is returned when no known shape appears in a product name.
const BagTypeFallback = "accessory"

// bagTypeFamilies groups shapes that serve the same carry style. A requested
// type scores partial credit against other members of its family.
var bagTypeFamilies = [][]string{
	{"crossbody", "satchel", "hobo"},
	{"wallet", "pouch", "clutch"},
}

// DetectBagType infers the coarse product shape from the display name.
func DetectBagType(productName string) string {
	lower := strings.ToLower(productName)
	for _, t := range bagTypes {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return BagTypeFallback
}

// SameFamily reports whether two bag types belong to the same carry family.
func SameFamily(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	for _, family := range bagTypeFamilies {
		hasA, hasB := false, false
		for _, t := range family {
			if t == a {
				hasA = true
			}
			if t == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// FamilyAlternatives lists the other members of a bag type's family, used for
// the alternative-types block of a recommendation payload.
func FamilyAlternatives(bagType string) []string {
	lower := strings.ToLower(bagType)
	for _, family := range bagTypeFamilies {
		for _, t := range family {
			if t != lower {
				continue
			}
			alts := make([]string, 0, len(family)-1)
			for _, other := range family {
				if other != lower {
					alts = append(alts, other)
				}
			}
			return alts
		}
	}
	return nil
}

// bagTypeScore scores the profile's desired type against a product name:
// containment 100, same family 80, anything else a low default of 40.
func bagTypeScore(productName, wanted string) int {
	if wanted == "" {
		return bagTypeDefaultScore
	}
	if strings.Contains(strings.ToLower(productName), strings.ToLower(wanted)) {
		return 100
	}
	if SameFamily(DetectBagType(productName), wanted) {
		return bagTypeFamilyScore
	}
	return bagTypeDefaultScore
}

const (
	bagTypeFamilyScore  = 80
	bagTypeDefaultScore = 40
)
