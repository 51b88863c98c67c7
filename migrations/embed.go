// Package migrations carries the postgres schema as embedded SQL files.
package migrations

import "embed"

// Files holds NNN_name.sql migrations and their NNN_name_rollback.sql pairs.
//
//go:embed *.sql
var Files embed.FS
