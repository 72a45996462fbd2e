package models

// PlaceSuggestion is one autocomplete result.
type PlaceSuggestion struct {
	ID    string `json:"place_id"`
	Label string `json:"description"`
}

// Destination is a suggestion resolved to a concrete point and a formatted address.
type Destination struct {
	Coordinate Coordinate `json:"coordinate"`
	Label      string     `json:"label"`
}
