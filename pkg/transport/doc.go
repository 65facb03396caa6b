// Package transport delivers prepared mail messages through one of two
// interchangeable channels.
//
// The Transport interface is the only thing the pipeline depends on; Select
// picks the implementation once per run from configuration. A non-empty
// SendGrid API key selects the HTTP API variant, anything else the SMTP
// variant.
//
// The two variants intentionally differ in recipient handling, mirroring
// the behavior the club has relied on for years: SMTP fans one message out
// to every semicolon-delimited address in the ledger field, while SendGrid
// addresses only the first. This asymmetry is almost certainly an accident
// of history rather than a design goal, but fixing it would change who
// receives mail, so it stays until someone decides otherwise.
package transport
