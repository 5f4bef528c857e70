// Package config handles project configuration for folio.
//
// Configuration is layered with koanf: embedded defaults, then the project
// file (folio.yaml, .folio.yaml or folio.toml in the project root), then
// FOLIO_* environment variables. A double underscore in a variable name
// descends into a section, so FOLIO_PAGINATOR__BINARY sets paginator.binary.
package config
