// Package migrations embeds the SQL schema so deployed binaries can
// migrate without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
