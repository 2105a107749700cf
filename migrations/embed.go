// Package migrations holds the database schema as numbered SQL migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
