package emissions

import "strings"

// CityLocator resolves a city name to coordinates.
// A miss is reported explicitly; callers decide whether to omit the estimate.
type CityLocator interface {
	LocateCity(city string) (Coordinates, bool)
}

// CityTable is a fixed city to coordinates lookup.
type CityTable struct {
	byName map[string]Coordinates
}

// NewCityTable copies the given entries. Keys are matched case-insensitively.
func NewCityTable(entries map[string]Coordinates) *CityTable {
	byName := make(map[string]Coordinates, len(entries))
	for name, coords := range entries {
		key := normalizeCity(name)
		if key == "" {
			continue
		}
		byName[key] = coords
	}
	return &CityTable{byName: byName}
}

// DefaultCityTable holds the cities with known coordinates.
func DefaultCityTable() *CityTable {
	return NewCityTable(map[string]Coordinates{
		"Manchester": {Lat: 53.4808, Lon: -2.2426},
		"Liverpool":  {Lat: 53.4084, Lon: -2.9916},
		"London":     {Lat: 51.5074, Lon: -0.1278},
	})
}

func (t *CityTable) LocateCity(city string) (Coordinates, bool) {
	if t == nil {
		return Coordinates{}, false
	}
	coords, ok := t.byName[normalizeCity(city)]
	return coords, ok
}

func (t *CityTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
