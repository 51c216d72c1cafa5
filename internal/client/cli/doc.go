// Package cli provides the interactive EcoScan command-line client.
//
// It wires configuration, the local SQLite store, the backend API client and
// an interactive REPL around the photo classification workflow. Typical flow:
// restore the persisted session, start a background connectivity watcher, and
// execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Select a photo, classify it, inspect the result and disposal guidance
//   - Local classification history; server-side record listing for admins
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
