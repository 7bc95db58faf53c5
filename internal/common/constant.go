// Package common contains constants shared by the CraftConnect client layers.
package common

const (
	// AuthTokenKey is the persisted-store key holding the bearer token.
	AuthTokenKey = "auth_token"
	// UserDataKey is the persisted-store key holding the JSON user record.
	UserDataKey = "user_data"

	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// RequestIDHeaderName correlates a client call with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultAPIBaseURL is used when no base URL is configured.
	DefaultAPIBaseURL = "http://localhost:8000"
)
