// Package newsroom holds files embedded into the binary.
package newsroom

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
