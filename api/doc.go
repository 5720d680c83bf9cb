// Package api serves searches over one loaded graph through HTTP.
//
// Routes:
//
//	GET  /healthz  liveness probe
//	GET  /graph    kind, state and edge counts of the served graph
//	POST /search   {start, goal, algorithm, limit} → one search run
//
// The graph is read-only, so any number of requests search it concurrently.
// Every request builds its own search.Problem, which keeps the depth limit a
// per-request value. Errors are JSON objects {"error": "..."}: 400 for a bad
// body, algorithm or limit, 422 for states outside the graph.
package api
