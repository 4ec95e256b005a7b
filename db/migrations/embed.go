// Package migrations embeds the SQL schema so the API can apply it at start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
