// Package slug turns display names into URL and DOM friendly identifiers.
//
// Diacritics are folded with golang.org/x/text normalization, so "Crème Brûlée"
// becomes "creme-brulee". Characters with no ASCII base letter act as
// separators.
//
//	slug.Make("Rainbow Sunset Painting")                 // "rainbow-sunset-painting"
//	slug.Make("Salt & Pepper", slug.CustomReplace(map[string]string{"&": "and"}))
//	slug.Make("Mountain Majesty", slug.MaxLength(8))     // "mountain"
package slug
