// Package migrations embeds the preference store schema.
package migrations

import "embed"

// FS holds the SQL migration files
//
//go:embed *.sql
var FS embed.FS
