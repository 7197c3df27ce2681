package domain

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinates lie within the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
