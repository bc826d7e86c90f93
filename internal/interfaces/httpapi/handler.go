package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-emissions/internal/config"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
	"github.com/riskibarqy/football-emissions/internal/usecase"
)

type Handler struct {
	referenceService *usecase.ReferenceService
	matchService     *usecase.MatchService
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	referenceService *usecase.ReferenceService,
	matchService *usecase.MatchService,
	dashboardService *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		referenceService: referenceService,
		matchService:     matchService,
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure keeps data source failures at error level; caller mistakes stay at warn.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if _, ok := usecase.AsDataSourceError(err); ok {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

type matchListRequest struct {
	LeagueID   int64  `validate:"omitempty,gte=1"`
	SeasonID   int64  `validate:"omitempty,gte=1"`
	TeamID     int64  `validate:"omitempty,gte=1"`
	Search     string `validate:"max=100"`
	Sort       string `validate:"omitempty,oneof=all highest recent"`
	Passengers int    `validate:"omitempty,min=1,max=500"`
}

type matchDetailRequest struct {
	MatchID int64 `validate:"required,gte=1"`
}

func (r matchListRequest) criteria() (usecase.MatchCriteria, error) {
	sortOrder, err := usecase.ParseSortOrder(r.Sort)
	if err != nil {
		return usecase.MatchCriteria{}, err
	}

	return usecase.MatchCriteria{
		Filter: match.Filter{
			LeagueID: r.LeagueID,
			SeasonID: r.SeasonID,
			TeamID:   r.TeamID,
		},
		Search:     r.Search,
		Sort:       sortOrder,
		Passengers: r.Passengers,
	}, nil
}

func parseMatchListRequest(r *http.Request) (matchListRequest, error) {
	query := r.URL.Query()

	leagueID, err := parseOptionalInt64(query.Get("league_id"), "league_id")
	if err != nil {
		return matchListRequest{}, err
	}
	seasonID, err := parseOptionalInt64(query.Get("season_id"), "season_id")
	if err != nil {
		return matchListRequest{}, err
	}
	teamID, err := parseOptionalInt64(query.Get("team_id"), "team_id")
	if err != nil {
		return matchListRequest{}, err
	}
	passengers, err := parseOptionalInt64(query.Get("passengers"), "passengers")
	if err != nil {
		return matchListRequest{}, err
	}

	return matchListRequest{
		LeagueID:   leagueID,
		SeasonID:   seasonID,
		TeamID:     teamID,
		Search:     strings.TrimSpace(query.Get("q")),
		Sort:       strings.ToLower(strings.TrimSpace(query.Get("sort"))),
		Passengers: int(passengers),
	}, nil
}

func parseOptionalInt64(raw, name string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func configErrorView(cfgErr *config.ConfigurationError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfigError")
		defer span.End()

		var err error = cfgErr
		if cfgErr == nil {
			err = &config.ConfigurationError{}
		}

		items := make([]googleErrorItem, 0, 1)
		if cfgErr != nil {
			for _, name := range cfgErr.Missing {
				items = append(items, googleErrorItem{
					Domain:  errorDomain,
					Reason:  "missingVariable",
					Message: name + " is not set",
				})
			}
		}
		if len(items) == 0 {
			items = append(items, googleErrorItem{
				Domain:  errorDomain,
				Reason:  "configurationError",
				Message: err.Error(),
			})
		}

		writeJSON(ctx, w, http.StatusServiceUnavailable, googleResponseEnvelope{
			APIVersion: googleAPIVersion,
			Error: &googleErrorBody{
				Code:    http.StatusServiceUnavailable,
				Message: err.Error(),
				Status:  "FAILED_PRECONDITION",
				Errors:  items,
			},
		})
	}
}
