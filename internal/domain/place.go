package domain

// Represents a single location to visit.
// A Place has a unique opaque identifier and fixed coordinates.
// Places are immutable inputs owned by the caller for the duration
// of one optimization call.
type Place struct {
	ID          string
	Name        string
	Coordinates Coordinates
	Address     string
	Metadata    map[string]string
}

// PlaceIndex returns the position of the place with the given id,
// or -1 when no place carries that id.
func PlaceIndex(places []Place, id string) int {
	for i, p := range places {
		if p.ID == id {
			return i
		}
	}
	return -1
}
