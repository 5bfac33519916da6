// Package migrations ships the versioned SQL schema with the binary.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
