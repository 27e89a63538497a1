package models

// UnknownCategory is the label shown for ordinals outside the category table.
const UnknownCategory = "Unknown"

// Categories is the fixed category table. The ledger stores the ordinal
// (position in this slice), never the label.
var Categories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Education",
	"Other",
}

// CategoryLabel resolves an ordinal stored on the ledger into its label.
func CategoryLabel(ordinal uint32) string {
	if int(ordinal) >= len(Categories) {
		return UnknownCategory
	}
	return Categories[ordinal]
}

// CategoryOrdinal returns the ordinal of a recognized label.
func CategoryOrdinal(label string) (uint32, bool) {
	for i, c := range Categories {
		if c == label {
			return uint32(i), true
		}
	}
	return 0, false
}
