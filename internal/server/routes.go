package server

import (
	"net/http"
	"strings"
)

// RouteDoc describes one registered API route. Mutating marks the
// commands that persist a snapshot after running, so clients can tell
// projections from commands when they list the surface.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
	Mutating    bool   `json:"mutating"`
}

// RouteRegistry collects the registered routes so the server can list
// its own surface at /api/routes.
type RouteRegistry struct {
	routes []RouteDoc
}

// Handle registers the handler on the mux and records its doc. The
// pattern uses the mux "METHOD /path" form; anything other than GET is
// recorded as mutating.
func (rr *RouteRegistry) Handle(mux *http.ServeMux, pattern, summary, exampleBody string, h http.HandlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	rr.routes = append(rr.routes, RouteDoc{
		Method:      method,
		Pattern:     path,
		Summary:     summary,
		ExampleBody: exampleBody,
		Mutating:    method != http.MethodGet,
	})
	mux.HandleFunc(pattern, h)
}

// List returns the registered routes in registration order.
func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}
