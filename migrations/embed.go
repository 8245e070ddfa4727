// Package migrations embeds the goose SQL migrations so the binary can apply
// them without a checkout of the repository.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS
