// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Category is one award slot. Nominees is display order only; an empty
// list means the category is tallied free-form.
type Category struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Nominees []string `json:"nominees"`
}

// DefaultCategories is the award configuration for the event. It is
// code-defined and immutable at runtime.
var DefaultCategories = []Category{
	{
		ID:    "lifetime_achievement",
		Title: "Life Time Achievement Award",
		Nominees: []string{
			"Sis Nda",
			"Sis Nobuhle",
			"Bro Abbey Amosun",
			"Sis Maria Daniel",
			"Sis Natasha Mopalami",
			"Bro. Aaron Ozakpolor",
		},
	},
	{
		ID:    "hand_of_service",
		Title: "Hand of Service",
		Nominees: []string{
			"Sis Wuraola",
			"Sis Sharon Alika",
			"Bro Irey",
			"Sis Nobuhle",
			"Sis Esther Joshua",
			"Bro Femi",
		},
	},
	{
		ID:    "most_committed",
		Title: "Most Committed",
		Nominees: []string{
			"Bro Irey",
			"Bro Abbey",
			"Sis Maria Daniel",
			"Sis. Esther Joshua",
			"Sis. Favour Joseph",
			"Sis Sharon Alika",
		},
	},
	{ID: "most_supportive", Title: "Most Supportive"},
	{ID: "most_outspoken", Title: "Most Outspoken"},
	{ID: "reserved", Title: "Reserved"},
}

// KnownCategory reports whether id is one of the configured award slots
func KnownCategory(id string) bool {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
