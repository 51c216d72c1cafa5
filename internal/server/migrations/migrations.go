// Package migrations embeds the goose SQL migrations for the server's
// PostgreSQL database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
