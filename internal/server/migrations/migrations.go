// Package migrations embeds the SQL migrations applied by goose when the
// Postgres metadata backend is selected.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
