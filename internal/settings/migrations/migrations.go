// Package migrations embeds the settings store's schema files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
