package common

const (
	// AuthorizationHeaderName carries the session token on protected requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// BcryptCost is the fixed work factor used for password digests.
	BcryptCost = 10
)
