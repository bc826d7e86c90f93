package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.referenceService.ListLeagues(ctx)
	if err != nil {
		h.logFailure(ctx, "list leagues failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.referenceService.ListTeams(ctx)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.referenceService.ListSeasons(ctx)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLatestSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestSeason")
	defer span.End()

	item, err := h.referenceService.LatestSeason(ctx)
	if err != nil {
		h.logFailure(ctx, "get latest season failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAirports")
	defer span.End()

	items, err := h.referenceService.ListAirports(ctx)
	if err != nil {
		h.logFailure(ctx, "list airports failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]airportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, airportToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
