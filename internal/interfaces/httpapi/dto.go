package httpapi

import (
	"time"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	"github.com/riskibarqy/football-emissions/internal/usecase"
)

const dateLayout = "2006-01-02"

type landingDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Links       []linkDTO `json:"links"`
}

type linkDTO struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type leagueDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type teamDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Stadium  string `json:"stadium,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Founded  int    `json:"founded,omitempty"`
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type airportDTO struct {
	ID        int64   `json:"id"`
	TeamID    int64   `json:"teamId"`
	IATACode  string  `json:"iataCode"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
	Label     string  `json:"label"`
}

type estimateDTO struct {
	DistanceKm  float64 `json:"distanceKm"`
	EmissionsKg float64 `json:"emissionsKg"`
	Cost        float64 `json:"cost"`
}

type matchDTO struct {
	ID             int64        `json:"id"`
	Date           string       `json:"date"`
	Name           string       `json:"name"`
	LeagueID       int64        `json:"leagueId"`
	LeagueName     string       `json:"leagueName"`
	SeasonID       int64        `json:"seasonId"`
	SeasonName     string       `json:"seasonName"`
	HomeTeamID     int64        `json:"homeTeamId"`
	HomeTeamName   string       `json:"homeTeamName"`
	HomeCity       string       `json:"homeCity"`
	AwayTeamID     int64        `json:"awayTeamId"`
	AwayTeamName   string       `json:"awayTeamName"`
	AwayCity       string       `json:"awayCity"`
	HomeLocation   *locationDTO `json:"homeLocation,omitempty"`
	AwayLocation   *locationDTO `json:"awayLocation,omitempty"`
	Estimate       *estimateDTO `json:"estimate,omitempty"`
	EstimateStatus string       `json:"estimateStatus"`
}

type matchCriteriaDTO struct {
	LeagueID   int64  `json:"leagueId,omitempty"`
	SeasonID   int64  `json:"seasonId,omitempty"`
	TeamID     int64  `json:"teamId,omitempty"`
	Search     string `json:"q,omitempty"`
	Sort       string `json:"sort"`
	Passengers int    `json:"passengers"`
}

type matchViewDTO struct {
	Criteria matchCriteriaDTO `json:"criteria"`
	Total    int              `json:"total"`
	Shown    int              `json:"shown"`
	Items    []matchDTO       `json:"items"`
}

type costBreakdownDTO struct {
	Fuel      float64 `json:"fuel"`
	Personnel float64 `json:"personnel"`
	Other     float64 `json:"other"`
}

// matchDetailDTO leaves flightHours and costBreakdown out when there is
// nothing to show, which clients render as "N/A".
type matchDetailDTO struct {
	Match         matchDTO          `json:"match"`
	TreesToOffset int               `json:"treesToOffset"`
	OffsetCost    float64           `json:"offsetCost"`
	HighEmission  bool              `json:"highEmission"`
	FlightHours   *float64          `json:"flightHours,omitempty"`
	CostBreakdown *costBreakdownDTO `json:"costBreakdown,omitempty"`
}

type monthlyEmissionDTO struct {
	Month       string  `json:"month"`
	EmissionsKg float64 `json:"emissionsKg"`
}

type teamEmissionDTO struct {
	TeamID      int64   `json:"teamId"`
	TeamName    string  `json:"teamName"`
	EmissionsKg float64 `json:"emissionsKg"`
	Trips       int     `json:"trips"`
}

type tripDTO struct {
	MatchID     int64   `json:"matchId"`
	Route       string  `json:"route"`
	Date        string  `json:"date"`
	DistanceKm  float64 `json:"distanceKm"`
	EmissionsKg float64 `json:"emissionsKg"`
}

type dashboardDTO struct {
	LatestSeason        *seasonDTO           `json:"latestSeason,omitempty"`
	LeagueCount         int                  `json:"leagueCount"`
	TeamCount           int                  `json:"teamCount"`
	MatchCount          int                  `json:"matchCount"`
	EstimatedMatchCount int                  `json:"estimatedMatchCount"`
	TotalEmissionsTons  float64              `json:"totalEmissionsTons"`
	MonthlyEmissions    []monthlyEmissionDTO `json:"monthlyEmissions"`
	TopTeams            []teamEmissionDTO    `json:"topTeams"`
	RecentTrips         []tripDTO            `json:"recentTrips"`
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(dateLayout)
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{ID: v.ID, Name: v.Name, Country: v.Country}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		Name:     v.Name,
		City:     v.City,
		Country:  v.Country,
		Stadium:  v.Stadium,
		Capacity: v.Capacity,
		Founded:  v.Founded,
	}
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:        v.ID,
		Label:     v.Label(),
		StartDate: formatDate(v.StartDate),
		EndDate:   formatDate(v.EndDate),
	}
}

func airportToDTO(v airport.Airport) airportDTO {
	return airportDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		IATACode:  v.IATACode,
		Name:      v.Name,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
}

func locationToDTO(v *usecase.Location) *locationDTO {
	if v == nil {
		return nil
	}
	return &locationDTO{
		Latitude:  v.Coordinates.Lat,
		Longitude: v.Coordinates.Lon,
		Source:    string(v.Source),
		Label:     v.Label,
	}
}

func matchToDTO(v usecase.EnrichedMatch) matchDTO {
	out := matchDTO{
		ID:             v.ID,
		Date:           formatDate(v.Date),
		Name:           v.MatchName,
		LeagueID:       v.LeagueID,
		LeagueName:     v.LeagueName,
		SeasonID:       v.SeasonID,
		SeasonName:     v.SeasonName,
		HomeTeamID:     v.HomeTeamID,
		HomeTeamName:   v.HomeTeamName,
		HomeCity:       v.HomeCity,
		AwayTeamID:     v.AwayTeamID,
		AwayTeamName:   v.AwayTeamName,
		AwayCity:       v.AwayCity,
		HomeLocation:   locationToDTO(v.HomeLocation),
		AwayLocation:   locationToDTO(v.AwayLocation),
		EstimateStatus: string(v.EstimateStatus),
	}
	if v.HasEstimate() {
		out.Estimate = &estimateDTO{
			DistanceKm:  v.Estimate.DistanceKm,
			EmissionsKg: v.Estimate.EmissionsKg,
			Cost:        v.Estimate.Cost,
		}
	}
	return out
}

func matchViewToDTO(v usecase.MatchView) matchViewDTO {
	items := make([]matchDTO, 0, len(v.Matches))
	for _, item := range v.Matches {
		items = append(items, matchToDTO(item))
	}

	return matchViewDTO{
		Criteria: matchCriteriaDTO{
			LeagueID:   v.Criteria.Filter.LeagueID,
			SeasonID:   v.Criteria.Filter.SeasonID,
			TeamID:     v.Criteria.Filter.TeamID,
			Search:     v.Criteria.Search,
			Sort:       string(v.Criteria.Sort),
			Passengers: v.Criteria.Passengers,
		},
		Total: v.Total,
		Shown: v.Shown,
		Items: items,
	}
}

func matchDetailToDTO(v usecase.MatchDetail) matchDetailDTO {
	out := matchDetailDTO{
		Match:         matchToDTO(v.Match),
		TreesToOffset: v.TreesToOffset,
		OffsetCost:    v.OffsetCost,
		HighEmission:  v.HighEmission,
	}
	if !v.Match.HasEstimate() {
		return out
	}
	if v.Match.Estimate.DistanceKm > 0 {
		hours := v.FlightHours
		out.FlightHours = &hours
	}
	if v.Match.Estimate.Cost > 0 {
		out.CostBreakdown = &costBreakdownDTO{
			Fuel:      v.CostBreakdown.Fuel,
			Personnel: v.CostBreakdown.Personnel,
			Other:     v.CostBreakdown.Other,
		}
	}
	return out
}

func dashboardToDTO(v usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		LeagueCount:         v.LeagueCount,
		TeamCount:           v.TeamCount,
		MatchCount:          v.MatchCount,
		EstimatedMatchCount: v.EstimatedMatchCount,
		TotalEmissionsTons:  v.TotalEmissionsTons,
		MonthlyEmissions:    make([]monthlyEmissionDTO, 0, len(v.MonthlyEmissions)),
		TopTeams:            make([]teamEmissionDTO, 0, len(v.TopTeams)),
		RecentTrips:         make([]tripDTO, 0, len(v.RecentTrips)),
	}
	if v.LatestSeason != nil {
		latest := seasonToDTO(*v.LatestSeason)
		out.LatestSeason = &latest
	}
	for _, item := range v.MonthlyEmissions {
		out.MonthlyEmissions = append(out.MonthlyEmissions, monthlyEmissionDTO{Month: item.Month, EmissionsKg: item.EmissionsKg})
	}
	for _, item := range v.TopTeams {
		out.TopTeams = append(out.TopTeams, teamEmissionDTO{
			TeamID:      item.TeamID,
			TeamName:    item.TeamName,
			EmissionsKg: item.EmissionsKg,
			Trips:       item.Trips,
		})
	}
	for _, item := range v.RecentTrips {
		out.RecentTrips = append(out.RecentTrips, tripDTO{
			MatchID:     item.MatchID,
			Route:       item.Route,
			Date:        formatDate(item.Date),
			DistanceKm:  item.DistanceKm,
			EmissionsKg: item.EmissionsKg,
		})
	}
	return out
}
