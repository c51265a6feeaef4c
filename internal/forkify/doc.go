// Package forkify provides an HTTP client for the Forkify recipe catalog.
//
// # Overview
//
// The package owns everything about talking to the catalog: URL and request
// construction, the per-request timeout bound, classification of failures,
// and normalization of the catalog's snake_case wire schema into the domain
// entities in internal/recipe.
//
// # Endpoints
//
//   - GET  {base}{id}          single recipe
//   - GET  {base}?search={q}   listing search
//   - POST {base}              submit a user-authored recipe
//
// Responses arrive wrapped in a {status, data:{recipe|recipes}} envelope.
// When an API key is configured it is appended to every request as a
// key={key} query parameter; without one, requests go out unauthenticated.
//
// # Error Handling
//
// Every failure is one of three types, checked with errors.As:
//
//   - *TimeoutError: the request exceeded the configured bound (default 10s).
//     The request is a single attempt; whatever the server does afterwards
//     is abandoned.
//   - *NetworkError: DNS failure, refused connection, offline. The message
//     is fixed and user-facing; the cause is available via Unwrap.
//   - *APIError: a non-2xx response, carrying the status code and the
//     server-supplied message when the body had one.
//
// Caller context cancellation is passed through untouched so it is never
// mistaken for a timeout. There are no retries and no backoff; the session
// layer decides what a failure means.
//
// # Testing
//
// Use httptest.Server and point NewClient at its URL. The Catalog interface
// exists so session tests can substitute a scripted implementation.
package forkify
