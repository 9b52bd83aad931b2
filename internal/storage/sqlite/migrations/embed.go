package migrations

import "embed"

// FS contains embedded SQLite migrations for gym storage.
//
//go:embed *.sql
var FS embed.FS
