package usecase

import (
	"time"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

const (
	UnknownTeam   = "Unknown Team"
	UnknownLeague = "Unknown League"
	UnknownSeason = "Unknown Season"
	UnknownCity   = "Unknown"
)

type EstimateStatus string

const (
	EstimateOK                 EstimateStatus = "ok"
	EstimateMissingTeam        EstimateStatus = "missing_team"
	EstimateUnresolvedLocation EstimateStatus = "unresolved_location"
)

type LocationSource string

const (
	LocationSourceAirport LocationSource = "airport"
	LocationSourceCity    LocationSource = "city"
)

// Location is where a team is considered to travel from or to.
type Location struct {
	Coordinates emissions.Coordinates
	Source      LocationSource
	// Label is the airport IATA code or the city name.
	Label string
}

// EnrichedMatch is a match joined with its reference data and trip estimate.
// Estimate is nil when either side could not be located.
type EnrichedMatch struct {
	ID             int64
	Date           time.Time
	LeagueID       int64
	SeasonID       int64
	HomeTeamID     int64
	AwayTeamID     int64
	HomeTeamName   string
	AwayTeamName   string
	HomeCity       string
	AwayCity       string
	LeagueName     string
	SeasonName     string
	MatchName      string
	HomeLocation   *Location
	AwayLocation   *Location
	Estimate       *emissions.TripEstimate
	EstimateStatus EstimateStatus
}

func (m EnrichedMatch) HasEstimate() bool {
	return m.Estimate != nil
}

// ReferenceData is the set of lookups a match is joined against.
type ReferenceData struct {
	leagueNames map[int64]string
	teams       map[int64]team.Team
	seasons     map[int64]season.Season
	airports    map[int64]airport.Airport
	cities      emissions.CityLocator
	passengers  int
}

func NewReferenceData(
	leagues []league.League,
	teams []team.Team,
	seasons []season.Season,
	airports []airport.Airport,
	cities emissions.CityLocator,
	passengers int,
) ReferenceData {
	if passengers <= 0 {
		passengers = emissions.DefaultPassengers
	}
	return ReferenceData{
		leagueNames: league.NameByID(leagues),
		teams:       team.IndexByID(teams),
		seasons:     season.IndexByID(seasons),
		airports:    airport.IndexByTeam(airports),
		cities:      cities,
		passengers:  passengers,
	}
}

// Locate resolves a team's airport first, then its city.
func (r ReferenceData) Locate(t team.Team) (Location, bool) {
	if ap, ok := r.airports[t.ID]; ok {
		return Location{
			Coordinates: emissions.Coordinates{Lat: ap.Latitude, Lon: ap.Longitude},
			Source:      LocationSourceAirport,
			Label:       ap.IATACode,
		}, true
	}
	if r.cities == nil || !t.HasCity() {
		return Location{}, false
	}
	coords, ok := r.cities.LocateCity(t.City)
	if !ok {
		return Location{}, false
	}
	return Location{Coordinates: coords, Source: LocationSourceCity, Label: t.City}, true
}

// EnrichMatch never fails; reference gaps become placeholder names and
// a missing estimate.
func EnrichMatch(m match.Match, refs ReferenceData) EnrichedMatch {
	out := EnrichedMatch{
		ID:           m.ID,
		Date:         m.Date,
		LeagueID:     m.LeagueID,
		SeasonID:     m.SeasonID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeTeamName: UnknownTeam,
		AwayTeamName: UnknownTeam,
		HomeCity:     UnknownCity,
		AwayCity:     UnknownCity,
		LeagueName:   UnknownLeague,
		SeasonName:   UnknownSeason,
	}

	if name, ok := refs.leagueNames[m.LeagueID]; ok {
		out.LeagueName = name
	}
	if s, ok := refs.seasons[m.SeasonID]; ok {
		out.SeasonName = s.Label()
	}

	home, homeOK := refs.teams[m.HomeTeamID]
	away, awayOK := refs.teams[m.AwayTeamID]

	homeLabel, awayLabel := UnknownCity, UnknownCity
	if homeOK {
		out.HomeTeamName = home.Name
		homeLabel = home.Name
		if home.HasCity() {
			out.HomeCity = home.City
		}
	}
	if awayOK {
		out.AwayTeamName = away.Name
		awayLabel = away.Name
		if away.HasCity() {
			out.AwayCity = away.City
		}
	}
	out.MatchName = homeLabel + " vs " + awayLabel

	if !homeOK || !awayOK {
		out.EstimateStatus = EstimateMissingTeam
		return out
	}

	if loc, ok := refs.Locate(home); ok {
		out.HomeLocation = &loc
	}
	if loc, ok := refs.Locate(away); ok {
		out.AwayLocation = &loc
	}
	if out.HomeLocation == nil || out.AwayLocation == nil {
		out.EstimateStatus = EstimateUnresolvedLocation
		return out
	}

	estimate := emissions.Estimate(out.HomeLocation.Coordinates, out.AwayLocation.Coordinates, refs.passengers)
	out.Estimate = &estimate
	out.EstimateStatus = EstimateOK
	return out
}

func EnrichMatches(matches []match.Match, refs ReferenceData) []EnrichedMatch {
	out := make([]EnrichedMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, EnrichMatch(m, refs))
	}
	return out
}
