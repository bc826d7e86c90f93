package airport

// Airport is the departure airport registered for a team.
type Airport struct {
	ID        int64
	TeamID    int64
	IATACode  string
	Name      string
	Latitude  float64
	Longitude float64
}

// IndexByTeam keeps the first airport listed for each team.
func IndexByTeam(items []Airport) map[int64]Airport {
	out := make(map[int64]Airport, len(items))
	for _, item := range items {
		if _, exists := out[item.TeamID]; exists {
			continue
		}
		out[item.TeamID] = item
	}
	return out
}
