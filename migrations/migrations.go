// Package migrations embeds the SQL migration files for both database
// dialects.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
