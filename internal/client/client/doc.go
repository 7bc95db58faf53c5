// Package client talks to the CraftConnect backend over HTTP/JSON.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, the AI copilot, products, recommendations, sales,
//     user profiles and the dashboard.
//  2. A concrete implementation (see HTTPClient) that builds every request
//     against a configured base URL, attaches the bearer token read from a
//     TokenSource, and reports 401 responses to an UnauthorizedHandler.
//
// The session manager is wired in after construction with Bind, so the
// client and the manager do not need each other to be built.
//
// # Error Handling
//
// Every failure is returned to the caller, nothing is retried:
//
//   - *NetworkError: no response was received (matches ErrUnavailable).
//   - *AuthError: the backend answered 401 (matches ErrUnauthorized).
//   - *APIError: any other non-2xx status, with the backend's detail.
//   - *MalformedResponseError: a 2xx body that is not valid JSON
//     (matches ErrMalformedResponse).
//
// Use ErrorDetail to get the message a view should display.
package client
