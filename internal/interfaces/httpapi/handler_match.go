package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	req, err := parseMatchListRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	criteria, err := req.criteria()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(criteriaAttributes(criteria)...)

	view, err := h.matchService.ListMatches(ctx, criteria)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err,
			"league_id", req.LeagueID,
			"season_id", req.SeasonID,
			"team_id", req.TeamID,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parseOptionalInt64(strings.TrimSpace(r.PathValue("matchID")), "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	listReq, err := parseMatchListRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, matchDetailRequest{MatchID: matchID}); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, listReq); err != nil {
		writeError(ctx, w, err)
		return
	}
	criteria, err := listReq.criteria()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("emissions.match_id", matchID))
	span.SetAttributes(criteriaAttributes(criteria)...)

	detail, err := h.matchService.GetMatch(ctx, matchID, criteria)
	if err != nil {
		h.logFailure(ctx, "get match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}
