// Package migrations embeds the goose migrations for every SQL backend.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the migrations for the PostgreSQL blob store
func Postgres() fs.FS {
	sub, _ := fs.Sub(files, "postgres")
	return sub
}

// SQLite returns the migrations for the SQLite blob store
func SQLite() fs.FS {
	sub, _ := fs.Sub(files, "sqlite")
	return sub
}
