package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

// ReferenceService exposes the raw reference tables behind the filter controls.
type ReferenceService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	seasonRepo  season.Repository
	matchRepo   match.Repository
	airportRepo airport.Repository
}

func NewReferenceService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	seasonRepo season.Repository,
	matchRepo match.Repository,
	airportRepo airport.Repository,
) *ReferenceService {
	return &ReferenceService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		seasonRepo:  seasonRepo,
		matchRepo:   matchRepo,
		airportRepo: airportRepo,
	}
}

func (s *ReferenceService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *ReferenceService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// ListSeasons returns seasons most recent first.
func (s *ReferenceService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListSeasons")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return season.SortByEndDateDesc(seasons), nil
}

func (s *ReferenceService) LatestSeason(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.LatestSeason")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("list seasons: %w", err)
	}
	latest, ok := season.Latest(seasons)
	if !ok {
		return season.Season{}, fmt.Errorf("%w: no seasons available", ErrNotFound)
	}
	return latest, nil
}

func (s *ReferenceService) ListMatchesBySeason(ctx context.Context, seasonID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListMatchesBySeason")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id must be positive", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matches by season: %w", err)
	}
	return matches, nil
}

func (s *ReferenceService) ListAirports(ctx context.Context) ([]airport.Airport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListAirports")
	defer span.End()

	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	return airports, nil
}
