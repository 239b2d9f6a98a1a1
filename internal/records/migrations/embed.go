// Package migrations holds the schema for local and test databases.
// Production reads the existing Supabase tables; these migrations create a
// compatible subset of them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
