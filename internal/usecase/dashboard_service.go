package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

const (
	dashboardTopTeams    = 5
	dashboardRecentTrips = 3
)

type Dashboard struct {
	LatestSeason        *season.Season
	LeagueCount         int
	TeamCount           int
	MatchCount          int
	EstimatedMatchCount int
	TotalEmissionsTons  float64
	MonthlyEmissions    []MonthlyEmission
	TopTeams            []TeamEmission
	RecentTrips         []Trip
}

type MonthlyEmission struct {
	// Month is formatted as 2006-01.
	Month       string
	EmissionsKg float64
}

type TeamEmission struct {
	TeamID      int64
	TeamName    string
	EmissionsKg float64
	Trips       int
}

type Trip struct {
	MatchID     int64
	Route       string
	Date        time.Time
	DistanceKm  float64
	EmissionsKg float64
}

type DashboardService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	seasonRepo  season.Repository
	airportRepo airport.Repository
	matchRepo   match.Repository
	cities      emissions.CityLocator
	passengers  int
}

func NewDashboardService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	seasonRepo season.Repository,
	airportRepo airport.Repository,
	matchRepo match.Repository,
	cities emissions.CityLocator,
	passengers int,
) *DashboardService {
	if cities == nil {
		cities = emissions.DefaultCityTable()
	}
	if passengers <= 0 {
		passengers = emissions.DefaultPassengers
	}

	return &DashboardService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		seasonRepo:  seasonRepo,
		airportRepo: airportRepo,
		matchRepo:   matchRepo,
		cities:      cities,
		passengers:  passengers,
	}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list leagues: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list teams: %w", err)
	}
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list seasons: %w", err)
	}

	out := Dashboard{
		LeagueCount:      len(leagues),
		TeamCount:        len(teams),
		MonthlyEmissions: []MonthlyEmission{},
		TopTeams:         []TeamEmission{},
		RecentTrips:      []Trip{},
	}

	latest, ok := season.Latest(seasons)
	if !ok {
		return out, nil
	}
	out.LatestSeason = &latest

	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list airports: %w", err)
	}
	matches, err := s.matchRepo.ListBySeason(ctx, latest.ID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list matches by season: %w", err)
	}

	refs := NewReferenceData(leagues, teams, seasons, airports, s.cities, s.passengers)
	enriched := EnrichMatches(matches, refs)
	out.MatchCount = len(enriched)

	totalKg := 0.0
	for _, item := range enriched {
		if !item.HasEstimate() {
			continue
		}
		out.EstimatedMatchCount++
		totalKg += item.Estimate.EmissionsKg
	}
	out.TotalEmissionsTons = emissions.Round(totalKg/1000, 2)
	out.MonthlyEmissions = monthlyEmissions(enriched)
	out.TopTeams = topTeamEmissions(enriched, dashboardTopTeams)
	out.RecentTrips = recentTrips(enriched, dashboardRecentTrips)

	return out, nil
}

func monthlyEmissions(items []EnrichedMatch) []MonthlyEmission {
	byMonth := make(map[string]float64)
	for _, item := range items {
		if !item.HasEstimate() || item.Date.IsZero() {
			continue
		}
		byMonth[item.Date.UTC().Format("2006-01")] += item.Estimate.EmissionsKg
	}

	out := make([]MonthlyEmission, 0, len(byMonth))
	for month, kg := range byMonth {
		out = append(out, MonthlyEmission{Month: month, EmissionsKg: emissions.Round(kg, 2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// topTeamEmissions attributes each trip to the visiting team.
func topTeamEmissions(items []EnrichedMatch, limit int) []TeamEmission {
	byTeam := make(map[int64]*TeamEmission)
	order := make([]int64, 0)
	for _, item := range items {
		if !item.HasEstimate() {
			continue
		}
		entry, ok := byTeam[item.AwayTeamID]
		if !ok {
			entry = &TeamEmission{TeamID: item.AwayTeamID, TeamName: item.AwayTeamName}
			byTeam[item.AwayTeamID] = entry
			order = append(order, item.AwayTeamID)
		}
		entry.EmissionsKg += item.Estimate.EmissionsKg
		entry.Trips++
	}

	out := make([]TeamEmission, 0, len(order))
	for _, id := range order {
		entry := *byTeam[id]
		entry.EmissionsKg = emissions.Round(entry.EmissionsKg, 2)
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmissionsKg > out[j].EmissionsKg })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func recentTrips(items []EnrichedMatch, limit int) []Trip {
	estimated := make([]EnrichedMatch, 0, len(items))
	for _, item := range items {
		if item.HasEstimate() {
			estimated = append(estimated, item)
		}
	}
	sort.SliceStable(estimated, func(i, j int) bool { return estimated[i].Date.After(estimated[j].Date) })
	if len(estimated) > limit {
		estimated = estimated[:limit]
	}

	out := make([]Trip, 0, len(estimated))
	for _, item := range estimated {
		out = append(out, Trip{
			MatchID:     item.ID,
			Route:       item.HomeTeamName + " → " + item.AwayTeamName,
			Date:        item.Date,
			DistanceKm:  item.Estimate.DistanceKm,
			EmissionsKg: item.Estimate.EmissionsKg,
		})
	}
	return out
}

