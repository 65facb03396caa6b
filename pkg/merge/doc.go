// Package merge implements the placeholder substitution used for both the
// printable document and the mail body.
//
// Templates are plain text with {{Field}} placeholders. Substitution is
// literal: no conditionals, no loops, no escaping, and unknown placeholders
// pass through untouched so a typo in a template is visible in the output
// instead of failing the run.
//
// A template file may optionally start with a YAML frontmatter block:
//
//	---
//	Subject: Membership card {{Season}}
//	---
//	Dear {{FirstName}},
//	...
//
// The frontmatter carries metadata such as the mail subject; the body below
// the closing fence is what gets rendered.
package merge
