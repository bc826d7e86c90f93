package match

import "testing"

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "zero", filter: Filter{}, want: true},
		{name: "league", filter: Filter{LeagueID: 1}, want: false},
		{name: "season", filter: Filter{SeasonID: 2}, want: false},
		{name: "team", filter: Filter{TeamID: 3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Fatalf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	m := Match{ID: 101, LeagueID: 1, SeasonID: 2, HomeTeamID: 10, AwayTeamID: 20}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty", filter: Filter{}, want: true},
		{name: "away team", filter: Filter{TeamID: 20}, want: true},
		{name: "other league", filter: Filter{LeagueID: 9}, want: false},
		{name: "other season", filter: Filter{LeagueID: 1, SeasonID: 9}, want: false},
		{name: "team not playing", filter: Filter{TeamID: 30}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(m); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
