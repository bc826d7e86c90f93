package team

import "strings"

// Team is a football club. City is the key used to resolve travel coordinates.
type Team struct {
	ID       int64
	Name     string
	City     string
	Country  string
	Stadium  string
	Capacity int
	Founded  int
}

func (t Team) HasCity() bool {
	return strings.TrimSpace(t.City) != ""
}

func IndexByID(items []Team) map[int64]Team {
	out := make(map[int64]Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}
