// Package cli provides the interactive workforce command-line client.
//
// It wires configuration, the local session database, the HTTP client with
// its middleware chain, the API services and the Session into a REPL.
// Typical flow: restore a stored session on startup, then log in or
// register, look at profiles and dashboards, browse and apply to jobs.
//
// The App subscribes to the Session and prints every state transition,
// including the silent logout that follows a rejected token.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
