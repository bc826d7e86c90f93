package supabase

import (
	"context"
	"strconv"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	"github.com/riskibarqy/football-emissions/internal/usecase"
)

type LeagueRepository struct {
	client *Client
}

func NewLeagueRepository(client *Client) *LeagueRepository {
	return &LeagueRepository{client: client}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueRow
	if err := r.client.selectRows(ctx, tableLeagues, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamRow
	if err := r.client.selectRows(ctx, tableTeams, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type SeasonRepository struct {
	client *Client
}

func NewSeasonRepository(client *Client) *SeasonRepository {
	return &SeasonRepository{client: client}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	var rows []seasonRow
	if err := r.client.selectRows(ctx, tableSeasons, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, usecase.NewDataSourceError(tableSeasons, opDecode, err)
		}
		out = append(out, item)
	}
	return out, nil
}

type MatchRepository struct {
	client *Client
}

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]match.Match, error) {
	return r.list(ctx, []filter{eq("season_id", formatID(seasonID))})
}

func (r *MatchRepository) List(ctx context.Context, f match.Filter) ([]match.Match, error) {
	filters := make([]filter, 0, 3)
	if f.LeagueID != 0 {
		filters = append(filters, eq("league_id", formatID(f.LeagueID)))
	}
	if f.SeasonID != 0 {
		filters = append(filters, eq("season_id", formatID(f.SeasonID)))
	}
	if f.TeamID != 0 {
		id := formatID(f.TeamID)
		filters = append(filters, anyOf("home_team_id.eq."+id, "away_team_id.eq."+id))
	}
	return r.list(ctx, filters)
}

func (r *MatchRepository) list(ctx context.Context, filters []filter) ([]match.Match, error) {
	var rows []matchRow
	if err := r.client.selectRows(ctx, tableMatches, filters, &rows); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, usecase.NewDataSourceError(tableMatches, opDecode, err)
		}
		out = append(out, item)
	}
	return out, nil
}

type AirportRepository struct {
	client *Client
}

func NewAirportRepository(client *Client) *AirportRepository {
	return &AirportRepository{client: client}
}

func (r *AirportRepository) List(ctx context.Context) ([]airport.Airport, error) {
	var rows []airportRow
	if err := r.client.selectRows(ctx, tableAirports, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]airport.Airport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
