package httpapi

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-emissions/internal/config"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/football-emissions/internal/mocks/domain/league"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
	"github.com/riskibarqy/football-emissions/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type envelope struct {
	APIVersion string              `json:"apiVersion"`
	Data       jsoniter.RawMessage `json:"data"`
	Error      *googleErrorBody    `json:"error"`
}

func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	airportRepo := memory.NewAirportRepository(memory.SeedAirports())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	cities := emissions.DefaultCityTable()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewReferenceService(leagueRepo, teamRepo, seasonRepo, matchRepo, airportRepo),
		usecase.NewMatchService(leagueRepo, teamRepo, seasonRepo, airportRepo, matchRepo, cities, emissions.DefaultPassengers, logger),
		usecase.NewDashboardService(leagueRepo, teamRepo, seasonRepo, airportRepo, matchRepo, cities, emissions.DefaultPassengers),
		logger,
	)
	return NewRouter(handler, logger, true, []string{"*"})
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := jsoniter.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode %s response: %v", target, err)
		}
	}
	return rec, body
}

func decodeData(t *testing.T, body envelope, out any) {
	t.Helper()
	if err := jsoniter.Unmarshal(body.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestLandingAndHealthz(t *testing.T) {
	router := newSeededRouter(t)

	rec, body := doGet(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var landing landingDTO
	decodeData(t, body, &landing)
	if landing.Title == "" || len(landing.Links) == 0 {
		t.Fatalf("unexpected landing payload: %+v", landing)
	}

	rec, _ = doGet(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", rec.Code)
	}

	rec, _ = doGet(t, router, "/unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestReferenceRoutes(t *testing.T) {
	router := newSeededRouter(t)

	_, body := doGet(t, router, "/v1/leagues")
	var leagues []leagueDTO
	decodeData(t, body, &leagues)
	if len(leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(leagues))
	}

	_, body = doGet(t, router, "/v1/teams")
	var teams []teamDTO
	decodeData(t, body, &teams)
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teams))
	}

	_, body = doGet(t, router, "/v1/seasons")
	var seasons []seasonDTO
	decodeData(t, body, &seasons)
	if len(seasons) != 2 || seasons[0].ID != memory.SeasonID2024 {
		t.Fatalf("expected latest season first, got %+v", seasons)
	}

	_, body = doGet(t, router, "/v1/seasons/latest")
	var latest seasonDTO
	decodeData(t, body, &latest)
	if latest.ID != memory.SeasonID2024 || latest.EndDate != "2024-05-25" {
		t.Fatalf("unexpected latest season: %+v", latest)
	}

	_, body = doGet(t, router, "/v1/airports")
	var airports []airportDTO
	decodeData(t, body, &airports)
	if len(airports) != 1 || airports[0].IATACode != "NCL" {
		t.Fatalf("unexpected airports: %+v", airports)
	}
}

func TestListMatches_FilterBySeasonAndTeam(t *testing.T) {
	router := newSeededRouter(t)

	rec, body := doGet(t, router, "/v1/matches?season_id=2&team_id=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var view matchViewDTO
	decodeData(t, body, &view)
	if view.Total != 2 || view.Shown != 2 {
		t.Fatalf("expected 2 matches, got total=%d shown=%d", view.Total, view.Shown)
	}
	for _, item := range view.Items {
		if item.HomeTeamID != memory.TeamIDLiverpool && item.AwayTeamID != memory.TeamIDLiverpool {
			t.Fatalf("match %d does not involve Liverpool", item.ID)
		}
	}
	if view.Criteria.Sort != "all" || view.Criteria.Passengers != emissions.DefaultPassengers {
		t.Fatalf("unexpected criteria echo: %+v", view.Criteria)
	}
}

func TestListMatches_SearchAndSort(t *testing.T) {
	router := newSeededRouter(t)

	_, body := doGet(t, router, "/v1/matches?season_id=2&sort=highest")
	var view matchViewDTO
	decodeData(t, body, &view)
	if len(view.Items) != 7 {
		t.Fatalf("expected 7 matches, got %d", len(view.Items))
	}
	last := view.Items[len(view.Items)-1]
	if last.Estimate != nil || last.EstimateStatus != string(usecase.EstimateUnresolvedLocation) {
		t.Fatalf("expected unresolved match last, got %+v", last)
	}
	for i := 1; i < len(view.Items)-1; i++ {
		if view.Items[i-1].Estimate.EmissionsKg < view.Items[i].Estimate.EmissionsKg {
			t.Fatalf("items not sorted by emissions at %d", i)
		}
	}

	_, body = doGet(t, router, "/v1/matches?q=NEWCASTLE")
	view = matchViewDTO{}
	decodeData(t, body, &view)
	if view.Shown != 1 || view.Items[0].ID != 103 {
		t.Fatalf("expected only match 103, got %+v", view.Items)
	}
	if view.Items[0].AwayLocation == nil || view.Items[0].AwayLocation.Source != string(usecase.LocationSourceAirport) {
		t.Fatalf("expected Newcastle located by airport, got %+v", view.Items[0].AwayLocation)
	}
}

func TestListMatches_InvalidQuery(t *testing.T) {
	router := newSeededRouter(t)

	tests := []string{
		"/v1/matches?sort=cheapest",
		"/v1/matches?passengers=501",
		"/v1/matches?league_id=abc",
		"/v1/matches?team_id=-4",
	}
	for _, target := range tests {
		rec, body := doGet(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		if body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" {
			t.Fatalf("%s: unexpected error body %+v", target, body.Error)
		}
	}
}

func TestGetMatch_DetailPanel(t *testing.T) {
	router := newSeededRouter(t)

	rec, body := doGet(t, router, "/v1/matches/101")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail matchDetailDTO
	decodeData(t, body, &detail)
	if detail.Match.Name != "Manchester United vs Liverpool" {
		t.Fatalf("unexpected match name: %q", detail.Match.Name)
	}
	if detail.Match.Estimate == nil {
		t.Fatalf("expected estimate")
	}
	if math.Abs(detail.Match.Estimate.DistanceKm-50.3) > 1e-9 {
		t.Fatalf("unexpected distance: %v", detail.Match.Estimate.DistanceKm)
	}
	if math.Abs(detail.Match.Estimate.EmissionsKg-150.76) > 1e-9 {
		t.Fatalf("unexpected emissions: %v", detail.Match.Estimate.EmissionsKg)
	}
	if detail.TreesToOffset != 7 || math.Abs(detail.OffsetCost-3.77) > 1e-9 || !detail.HighEmission {
		t.Fatalf("unexpected offset figures: %+v", detail)
	}
	if detail.FlightHours == nil || math.Abs(*detail.FlightHours-0.1) > 1e-9 {
		t.Fatalf("unexpected flight hours: %v", detail.FlightHours)
	}
	if detail.CostBreakdown == nil {
		t.Fatalf("expected cost breakdown")
	}
	if math.Abs(detail.CostBreakdown.Fuel-201.01) > 1e-9 ||
		math.Abs(detail.CostBreakdown.Personnel-150.76) > 1e-9 ||
		math.Abs(detail.CostBreakdown.Other-150.76) > 1e-9 {
		t.Fatalf("unexpected cost breakdown: %+v", *detail.CostBreakdown)
	}

	_, body = doGet(t, router, "/v1/matches/101?passengers=1")
	detail = matchDetailDTO{}
	decodeData(t, body, &detail)
	if math.Abs(detail.Match.Estimate.EmissionsKg-6.03) > 1e-9 || detail.HighEmission {
		t.Fatalf("unexpected single passenger figures: %+v", detail)
	}

	_, body = doGet(t, router, "/v1/matches/106")
	detail = matchDetailDTO{}
	decodeData(t, body, &detail)
	if detail.FlightHours != nil || detail.CostBreakdown != nil {
		t.Fatalf("expected no flight hours or breakdown for a same-city trip: %+v", detail)
	}
}

func TestGetMatch_Errors(t *testing.T) {
	router := newSeededRouter(t)

	rec, _ := doGet(t, router, "/v1/matches/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec, _ = doGet(t, router, "/v1/matches/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec, _ = doGet(t, router, "/v1/matches/101?league_id=2")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside the filter, got %d", rec.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	router := newSeededRouter(t)

	rec, body := doGet(t, router, "/v1/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var dashboard dashboardDTO
	decodeData(t, body, &dashboard)
	if dashboard.LatestSeason == nil || dashboard.LatestSeason.ID != memory.SeasonID2024 {
		t.Fatalf("unexpected latest season: %+v", dashboard.LatestSeason)
	}
	if dashboard.LeagueCount != 2 || dashboard.TeamCount != 8 || dashboard.MatchCount != 7 || dashboard.EstimatedMatchCount != 6 {
		t.Fatalf("unexpected counts: %+v", dashboard)
	}
	if math.Abs(dashboard.TotalEmissionsTons-3.88) > 1e-9 {
		t.Fatalf("unexpected total tons: %v", dashboard.TotalEmissionsTons)
	}
	if len(dashboard.RecentTrips) != 3 || dashboard.RecentTrips[0].MatchID != 106 {
		t.Fatalf("unexpected recent trips: %+v", dashboard.RecentTrips)
	}
}

func TestDataSourceFailureRendersUnavailable(t *testing.T) {
	leagueRepo := leaguemock.NewRepository(t)
	sourceErr := usecase.NewDataSourceError("leagues", "select", errors.New("connection refused"))
	leagueRepo.On("List", mock.Anything).Return(nil, sourceErr).Once()

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewReferenceService(leagueRepo, nil, nil, nil, nil),
		nil,
		nil,
		logger,
	)
	router := NewRouter(handler, logger, false, []string{"*"})

	rec, body := doGet(t, router, "/v1/leagues")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if body.Error == nil || body.Error.Status != "UNAVAILABLE" {
		t.Fatalf("unexpected error body: %+v", body.Error)
	}
	item := body.Error.Errors[0]
	if item.Reason != "dataSourceError" || item.Retry != "reload" {
		t.Fatalf("unexpected error item: %+v", item)
	}
	if body.Error.Message != "list leagues: data source select leagues: connection refused" {
		t.Fatalf("unexpected message: %q", body.Error.Message)
	}
}

func TestSwaggerRoutes(t *testing.T) {
	router := newSeededRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}

	handler := NewHandler(nil, nil, nil, nil)
	router = NewRouter(handler, nil, false, []string{"*"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected docs hidden when disabled, got %d", rec.Code)
	}
}

func TestConfigErrorRouter(t *testing.T) {
	cfgErr := &config.ConfigurationError{Driver: config.DriverSupabase, Missing: []string{"SUPABASE_URL", "SUPABASE_ANON_KEY"}}
	router := NewConfigErrorRouter(cfgErr, logging.NewNop(), []string{"*"})

	for _, target := range []string{"/", "/v1/dashboard", "/v1/matches?season_id=2", "/healthz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected redirect, got %d", target, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != "/error" {
			t.Fatalf("%s: unexpected Location %q", target, got)
		}
	}

	rec, body := doGet(t, router, "/error")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if body.Error == nil || body.Error.Status != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error body: %+v", body.Error)
	}
	if len(body.Error.Errors) != 2 || body.Error.Errors[0].Message != "SUPABASE_URL is not set" {
		t.Fatalf("unexpected error items: %+v", body.Error.Errors)
	}
}
