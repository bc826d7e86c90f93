package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
)

// MatchDetail carries the figures of the per-match detail panel.
type MatchDetail struct {
	Match         EnrichedMatch
	TreesToOffset int
	OffsetCost    float64
	HighEmission  bool
	FlightHours   float64
	CostBreakdown emissions.CostShares
}

type MatchService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	seasonRepo  season.Repository
	airportRepo airport.Repository
	matchRepo   match.Repository
	cities      emissions.CityLocator
	passengers  int
	logger      *logging.Logger
}

func NewMatchService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	seasonRepo season.Repository,
	airportRepo airport.Repository,
	matchRepo match.Repository,
	cities emissions.CityLocator,
	defaultPassengers int,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if cities == nil {
		cities = emissions.DefaultCityTable()
	}
	if defaultPassengers <= 0 {
		defaultPassengers = emissions.DefaultPassengers
	}

	return &MatchService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		seasonRepo:  seasonRepo,
		airportRepo: airportRepo,
		matchRepo:   matchRepo,
		cities:      cities,
		passengers:  defaultPassengers,
		logger:      logger,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, criteria MatchCriteria) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	criteria, err := criteria.normalize(s.passengers)
	if err != nil {
		return MatchView{}, err
	}

	refs, err := s.loadReferences(ctx, criteria.Passengers)
	if err != nil {
		return MatchView{}, err
	}

	matches, err := s.matchRepo.List(ctx, criteria.Filter)
	if err != nil {
		return MatchView{}, fmt.Errorf("list matches: %w", err)
	}

	enriched := EnrichMatches(matches, refs)
	s.logReferenceGaps(ctx, enriched)

	return BuildMatchView(criteria, enriched), nil
}

// GetMatch looks the match up within the current filter criteria, so the
// detail panel always belongs to a row the list can show.
func (s *MatchService) GetMatch(ctx context.Context, matchID int64, criteria MatchCriteria) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	if matchID <= 0 {
		return MatchDetail{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	criteria, err := criteria.normalize(s.passengers)
	if err != nil {
		return MatchDetail{}, err
	}

	refs, err := s.loadReferences(ctx, criteria.Passengers)
	if err != nil {
		return MatchDetail{}, err
	}

	matches, err := s.matchRepo.List(ctx, criteria.Filter)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list matches: %w", err)
	}

	for _, m := range matches {
		if m.ID != matchID {
			continue
		}
		enriched := EnrichMatch(m, refs)
		s.logReferenceGaps(ctx, []EnrichedMatch{enriched})
		return newMatchDetail(enriched), nil
	}

	return MatchDetail{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
}

func (s *MatchService) loadReferences(ctx context.Context, passengers int) (ReferenceData, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("list leagues: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("list teams: %w", err)
	}
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("list seasons: %w", err)
	}
	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("list airports: %w", err)
	}

	return NewReferenceData(leagues, teams, seasons, airports, s.cities, passengers), nil
}

func (s *MatchService) logReferenceGaps(ctx context.Context, items []EnrichedMatch) {
	for _, item := range items {
		if item.EstimateStatus == EstimateOK {
			continue
		}
		s.logger.DebugContext(ctx, "match estimate unavailable",
			"match_id", item.ID,
			"status", string(item.EstimateStatus),
			"home_team_id", item.HomeTeamID,
			"away_team_id", item.AwayTeamID,
		)
	}
}

func newMatchDetail(m EnrichedMatch) MatchDetail {
	detail := MatchDetail{Match: m}
	if !m.HasEstimate() {
		return detail
	}
	detail.TreesToOffset = emissions.TreesToOffset(m.Estimate.EmissionsKg)
	detail.OffsetCost = emissions.OffsetCost(m.Estimate.EmissionsKg)
	detail.HighEmission = emissions.IsHighEmission(m.Estimate.EmissionsKg)
	detail.FlightHours = emissions.FlightHours(m.Estimate.DistanceKm)
	detail.CostBreakdown = emissions.CostBreakdown(m.Estimate.Cost)
	return detail
}
