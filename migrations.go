// Package foodgram holds assets shared by the binaries of the service.
package foodgram

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
