package match

import "time"

// Match is one fixture between a home and an away team.
type Match struct {
	ID         int64
	Date       time.Time
	LeagueID   int64
	SeasonID   int64
	HomeTeamID int64
	AwayTeamID int64
}

// Filter narrows a match listing. Zero values mean "any".
// TeamID matches either side of the fixture.
type Filter struct {
	LeagueID int64
	SeasonID int64
	TeamID   int64
}

// IsEmpty reports whether the filter lets every match through.
func (f Filter) IsEmpty() bool {
	return f.LeagueID == 0 && f.SeasonID == 0 && f.TeamID == 0
}

// Matches reports whether m passes every non-zero field of the filter.
func (f Filter) Matches(m Match) bool {
	if f.LeagueID != 0 && m.LeagueID != f.LeagueID {
		return false
	}
	if f.SeasonID != 0 && m.SeasonID != f.SeasonID {
		return false
	}
	if f.TeamID != 0 && m.HomeTeamID != f.TeamID && m.AwayTeamID != f.TeamID {
		return false
	}
	return true
}
