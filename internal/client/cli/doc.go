// Package cli provides the interactive avarich terminal client.
//
// It wires configuration, the local session cache, the HTTP API client and
// the chat proxy behind a small REPL. On start the cached session is
// confirmed with the server; commands then drive sign-up, sign-in,
// onboarding (user type, personal information, income) and the chat.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
