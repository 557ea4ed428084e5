package http

import (
	"net/http"

	"ledgerview/internal/chart"
	"ledgerview/internal/core"
	"ledgerview/internal/present"
)

// parsePrecision reads ?precision=, defaulting to monthly buckets.
func parsePrecision(r *http.Request) (core.Precision, error) {
	return core.ParsePrecision(r.URL.Query().Get("precision"))
}

// parseColumns reads ?columns=a,b,c, defaulting to present.DefaultColumns.
func parseColumns(r *http.Request) ([]present.Column, error) {
	return present.ParseColumns(r.URL.Query().Get("columns"))
}

// parseKind reads ?kind=, defaulting to the net history.
func parseKind(r *http.Request) (chart.Kind, error) {
	v := r.URL.Query().Get("kind")
	if v == "" {
		return chart.Net, nil
	}
	return chart.ParseKind(v)
}
