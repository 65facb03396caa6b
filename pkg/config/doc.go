// Package config parses the dispatcher's command-line options.
//
// All run inputs come in as flags; the only environment-driven settings are
// the Sentry DSN and environment consumed directly by the entrypoint.
// Parse errors abort the run before any ledger row is touched.
package config
