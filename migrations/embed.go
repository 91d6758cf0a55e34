package migrations

import "embed"

// FS embeds the SQL migration files so the binary runs standalone
//
//go:embed *.sql
var FS embed.FS
