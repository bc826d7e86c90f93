package supabase

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

const (
	tableLeagues  = "leagues"
	tableTeams    = "teams"
	tableSeasons  = "seasons"
	tableMatches  = "matches"
	tableAirports = "airports"
)

// PostgREST renders date columns as 2006-01-02 and timestamps with or
// without an offset depending on the column type.
var timeLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
}

type leagueRow struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country *string `json:"country"`
}

func (r leagueRow) toDomain() league.League {
	return league.League{ID: r.ID, Name: r.Name, Country: stringValue(r.Country)}
}

type teamRow struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	Stadium  *string `json:"stadium"`
	Capacity *int    `json:"capacity"`
	Founded  *int    `json:"founded"`
}

func (r teamRow) toDomain() team.Team {
	return team.Team{
		ID:       r.ID,
		Name:     r.Name,
		City:     stringValue(r.City),
		Country:  stringValue(r.Country),
		Stadium:  stringValue(r.Stadium),
		Capacity: intValue(r.Capacity),
		Founded:  intValue(r.Founded),
	}
}

type seasonRow struct {
	ID        int64  `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r seasonRow) toDomain() (season.Season, error) {
	start, err := parseTime(r.StartDate)
	if err != nil {
		return season.Season{}, crerr.Wrapf(err, "season %d start_date", r.ID)
	}
	end, err := parseTime(r.EndDate)
	if err != nil {
		return season.Season{}, crerr.Wrapf(err, "season %d end_date", r.ID)
	}
	return season.Season{ID: r.ID, StartDate: start, EndDate: end}, nil
}

type matchRow struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	LeagueID   int64  `json:"league_id"`
	SeasonID   int64  `json:"season_id"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
}

func (r matchRow) toDomain() (match.Match, error) {
	date, err := parseTime(r.Date)
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "match %d date", r.ID)
	}
	return match.Match{
		ID:         r.ID,
		Date:       date,
		LeagueID:   r.LeagueID,
		SeasonID:   r.SeasonID,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
	}, nil
}

type airportRow struct {
	ID          int64   `json:"id"`
	TeamID      int64   `json:"team_id"`
	IATACode    string  `json:"iata_code"`
	AirportName string  `json:"airport_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (r airportRow) toDomain() airport.Airport {
	return airport.Airport{
		ID:        r.ID,
		TeamID:    r.TeamID,
		IATACode:  strings.TrimSpace(r.IATACode),
		Name:      r.AirportName,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, crerr.Newf("unsupported time value %q", raw)
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
