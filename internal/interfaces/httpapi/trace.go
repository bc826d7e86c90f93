package httpapi

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-emissions/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var emissionsAPITracer = otel.Tracer("football-emissions/internal/interfaces/httpapi")
var untracedSpan = trace.SpanFromContext(context.Background())

// startSpan opens spans for handlers only. Middleware and response helpers
// share the handler's span, and untraced routes such as /healthz get none.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, untracedSpan
	}
	if !isHandlerSpan(name) {
		return ctx, untracedSpan
	}
	return emissionsAPITracer.Start(ctx, name)
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}

// criteriaAttributes describes a match listing on its span. Zero filter
// fields are left out.
func criteriaAttributes(c usecase.MatchCriteria) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 6)
	if c.Filter.LeagueID != 0 {
		attrs = append(attrs, attribute.Int64("emissions.filter.league_id", c.Filter.LeagueID))
	}
	if c.Filter.SeasonID != 0 {
		attrs = append(attrs, attribute.Int64("emissions.filter.season_id", c.Filter.SeasonID))
	}
	if c.Filter.TeamID != 0 {
		attrs = append(attrs, attribute.Int64("emissions.filter.team_id", c.Filter.TeamID))
	}
	if c.Search != "" {
		attrs = append(attrs, attribute.Bool("emissions.search", true))
	}
	if c.Sort != "" {
		attrs = append(attrs, attribute.String("emissions.sort", string(c.Sort)))
	}
	if c.Passengers > 0 {
		attrs = append(attrs, attribute.Int("emissions.passengers", c.Passengers))
	}
	return attrs
}
