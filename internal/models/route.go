package models

// Route is an ordered path from origin to destination. An empty route means no route.
type Route struct {
	Coordinates []Coordinate `json:"coordinates"`
}

// Empty reports whether the route has no coordinates.
func (r Route) Empty() bool {
	return len(r.Coordinates) == 0
}

// Clone returns a route backed by its own slice.
func (r Route) Clone() Route {
	if r.Coordinates == nil {
		return Route{Coordinates: []Coordinate{}}
	}
	out := make([]Coordinate, len(r.Coordinates))
	copy(out, r.Coordinates)
	return Route{Coordinates: out}
}
