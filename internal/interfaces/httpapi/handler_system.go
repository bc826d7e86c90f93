package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Landing")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, landingDTO{
		Title:       "Football Travel Emissions",
		Description: "Carbon emissions of team travel between football matches, estimated from great-circle flight distance.",
		Links: []linkDTO{
			{Rel: "dashboard", Href: "/v1/dashboard"},
			{Rel: "matches", Href: "/v1/matches"},
			{Rel: "leagues", Href: "/v1/leagues"},
			{Rel: "seasons", Href: "/v1/seasons"},
		},
	})
}
