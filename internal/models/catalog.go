package models

// SeasonAll marks items that pass every season filter.
const SeasonAll = "All Season"

var predefinedCategories = []string{
	"Shirts",
	"Pants",
	"Jackets",
	"Coats",
	"Dresses",
	"Shoes",
	"Accessories",
	"Undergarments",
	"Sportswear",
	"Formal Wear",
}

var seasons = []string{"Spring", "Summer", "Fall", "Winter", SeasonAll}

// PredefinedCategories returns a fresh copy of the built-in category catalog.
func PredefinedCategories() []string {
	return append([]string(nil), predefinedCategories...)
}

// Seasons returns a fresh copy of the season list.
func Seasons() []string {
	return append([]string(nil), seasons...)
}
