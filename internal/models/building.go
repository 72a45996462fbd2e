package models

// Building is a campus building rendered as a tappable marker. Name is its stable key.
type Building struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	IconName    string  `json:"icon_name"`
}

// Coordinate returns the building's position.
func (b Building) Coordinate() Coordinate {
	return Coordinate{Longitude: b.Longitude, Latitude: b.Latitude}
}

// DefaultBuildings is the reference campus data seeded into the building store.
var DefaultBuildings = []Building{
	{
		Name:        "Scarborough Library",
		Latitude:    39.432961,
		Longitude:   -77.804428,
		Description: "The Scarborough library holds much more than books. With student meeting spaces, computer labs, a printing center, periodicals, digital media and archives, the library is the hub for all things academic.",
		IconName:    "map-marker",
	},
	{
		Name:        "Snyder Hall",
		Latitude:    39.432398,
		Longitude:   -77.804750,
		Description: "Snyder Hall is home to the Department of Computer Science, Mathematics and Engineering. Beyond classroom space it also holds laboratories for Geographic Information Systems, Aquatic Sciences, and Robotics.",
		IconName:    "map-marker",
	},
}
