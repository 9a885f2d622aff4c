// Package api exposes config lookups over HTTP.
//
// A GET under the API prefix resolves the rest of the path against the config root:
//
//	GET /api/v1/movies/library/The Prestige/Director  ->  200 "Christopher Nolan"
//	GET /api/v1/movies/library/The Prestige/Budget    ->  404
//	GET /api/v1/                                      ->  400
//
// Found values are written as JSON. A number leaf is written as its canonical decimal
// string, so a year of 2006 is returned as "2006". Every other status has an empty body.
//
// The handler also serves /health, /info and, when metrics are configured, /metrics.
package api
