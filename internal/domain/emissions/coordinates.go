package emissions

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}
