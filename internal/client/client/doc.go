// Package client contains client-side building blocks for avarich.
//
// # Overview
//
// The package provides:
//  1. The API contract used by the session layer (see the Client interface):
//     Signup, Signin, GetUser, SetUserType, SetPersonalInformation,
//     SetIncome and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that attaches the
//     bearer token and turns non-2xx answers into *APIError values carrying
//     the server's message.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures match ErrUnavailable and 401 answers match
// ErrUnauthorized with errors.Is. Use errors.As with *APIError to read the
// status code and message.
package client
