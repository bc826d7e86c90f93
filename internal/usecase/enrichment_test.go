package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	"github.com/riskibarqy/football-emissions/internal/infrastructure/repository/memory"
)

func seededReferences(airports []airport.Airport) ReferenceData {
	return NewReferenceData(
		memory.SeedLeagues(),
		memory.SeedTeams(),
		memory.SeedSeasons(),
		airports,
		emissions.DefaultCityTable(),
		emissions.DefaultPassengers,
	)
}

func TestEnrichMatch_ResolvedTeams(t *testing.T) {
	refs := seededReferences(memory.SeedAirports())
	m := match.Match{
		ID:         101,
		Date:       time.Date(2023, time.August, 12, 0, 0, 0, 0, time.UTC),
		LeagueID:   memory.LeagueIDPremierLeague,
		SeasonID:   memory.SeasonID2024,
		HomeTeamID: memory.TeamIDManchesterUnited,
		AwayTeamID: memory.TeamIDLiverpool,
	}

	got := EnrichMatch(m, refs)

	if got.MatchName != "Manchester United vs Liverpool" {
		t.Fatalf("unexpected match name: %q", got.MatchName)
	}
	if got.LeagueName != "Premier League" || got.SeasonName != "2" {
		t.Fatalf("unexpected league/season: %q %q", got.LeagueName, got.SeasonName)
	}
	if got.HomeCity != "Manchester" || got.AwayCity != "Liverpool" {
		t.Fatalf("unexpected cities: %q %q", got.HomeCity, got.AwayCity)
	}
	if got.EstimateStatus != EstimateOK || got.Estimate == nil {
		t.Fatalf("expected estimate, got status=%s", got.EstimateStatus)
	}
	if got.Estimate.DistanceKm != 50.3 || got.Estimate.EmissionsKg != 150.76 || got.Estimate.Cost != 502.53 {
		t.Fatalf("unexpected estimate: %+v", *got.Estimate)
	}
	if got.HomeLocation.Source != LocationSourceCity || got.AwayLocation.Source != LocationSourceCity {
		t.Fatalf("expected city sources, got %s/%s", got.HomeLocation.Source, got.AwayLocation.Source)
	}
}

func TestEnrichMatch_MissingTeamUsesPlaceholders(t *testing.T) {
	refs := seededReferences(nil)
	m := match.Match{ID: 9, LeagueID: 77, SeasonID: 88, HomeTeamID: 999, AwayTeamID: memory.TeamIDLiverpool}

	got := EnrichMatch(m, refs)

	if got.HomeTeamName != UnknownTeam || got.HomeCity != UnknownCity {
		t.Fatalf("unexpected home placeholders: %q %q", got.HomeTeamName, got.HomeCity)
	}
	if got.AwayTeamName != "Liverpool" {
		t.Fatalf("unexpected away team: %q", got.AwayTeamName)
	}
	if got.MatchName != "Unknown vs Liverpool" {
		t.Fatalf("unexpected match name: %q", got.MatchName)
	}
	if got.LeagueName != UnknownLeague || got.SeasonName != UnknownSeason {
		t.Fatalf("unexpected league/season placeholders: %q %q", got.LeagueName, got.SeasonName)
	}
	if got.Estimate != nil || got.EstimateStatus != EstimateMissingTeam {
		t.Fatalf("expected missing_team without estimate, got %s", got.EstimateStatus)
	}
}

func TestEnrichMatch_UnresolvedCityHasNoEstimate(t *testing.T) {
	refs := seededReferences(memory.SeedAirports())
	m := match.Match{ID: 104, HomeTeamID: memory.TeamIDEverton, AwayTeamID: memory.TeamIDBrighton}

	got := EnrichMatch(m, refs)

	if got.Estimate != nil {
		t.Fatalf("expected no estimate for unresolved city, got %+v", *got.Estimate)
	}
	if got.EstimateStatus != EstimateUnresolvedLocation {
		t.Fatalf("unexpected status: %s", got.EstimateStatus)
	}
	if got.HomeLocation == nil || got.AwayLocation != nil {
		t.Fatalf("expected only the home side located")
	}
	if got.AwayCity != "Brighton" {
		t.Fatalf("unexpected away city: %q", got.AwayCity)
	}
}

func TestEnrichMatch_AirportTakesPrecedenceOverCity(t *testing.T) {
	airports := []airport.Airport{
		{ID: 5, TeamID: memory.TeamIDLiverpool, IATACode: "LPL", Name: "Liverpool John Lennon Airport", Latitude: 53.3336, Longitude: -2.8497},
	}
	refs := seededReferences(airports)
	m := match.Match{ID: 1, HomeTeamID: memory.TeamIDManchesterUnited, AwayTeamID: memory.TeamIDLiverpool}

	got := EnrichMatch(m, refs)

	if got.AwayLocation == nil || got.AwayLocation.Source != LocationSourceAirport {
		t.Fatalf("expected airport location for away side")
	}
	if got.AwayLocation.Label != "LPL" {
		t.Fatalf("unexpected airport label: %q", got.AwayLocation.Label)
	}
	cityOnly := emissions.Estimate(
		emissions.Coordinates{Lat: 53.4808, Lon: -2.2426},
		emissions.Coordinates{Lat: 53.4084, Lon: -2.9916},
		emissions.DefaultPassengers,
	)
	if got.Estimate == nil || got.Estimate.DistanceKm == cityOnly.DistanceKm {
		t.Fatalf("expected estimate from airport coordinates, got %+v", got.Estimate)
	}
}

func TestEnrichMatch_AirportResolvesCityMissingFromTable(t *testing.T) {
	refs := seededReferences(memory.SeedAirports())
	m := match.Match{ID: 103, HomeTeamID: memory.TeamIDChelsea, AwayTeamID: memory.TeamIDNewcastle}

	got := EnrichMatch(m, refs)

	if got.EstimateStatus != EstimateOK || got.Estimate == nil {
		t.Fatalf("expected estimate, got status=%s", got.EstimateStatus)
	}
	if got.Estimate.EmissionsKg != 1218.13 {
		t.Fatalf("unexpected emissions: %v", got.Estimate.EmissionsKg)
	}
}

func TestEnrichMatch_PassengersScaleEmissions(t *testing.T) {
	refs := NewReferenceData(nil, []team.Team{
		{ID: 1, Name: "A", City: "Manchester"},
		{ID: 2, Name: "B", City: "Liverpool"},
	}, nil, nil, emissions.DefaultCityTable(), 1)

	got := EnrichMatch(match.Match{ID: 1, HomeTeamID: 1, AwayTeamID: 2}, refs)
	if got.Estimate == nil || got.Estimate.EmissionsKg != 6.03 {
		t.Fatalf("unexpected single passenger estimate: %+v", got.Estimate)
	}
}

func TestEnrichMatches_KeepsOrderAndLength(t *testing.T) {
	refs := seededReferences(memory.SeedAirports())
	matches := memory.SeedMatches()

	got := EnrichMatches(matches, refs)
	if len(got) != len(matches) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(matches))
	}
	for i := range matches {
		if got[i].ID != matches[i].ID {
			t.Fatalf("order changed at %d: got=%d want=%d", i, got[i].ID, matches[i].ID)
		}
	}
}
