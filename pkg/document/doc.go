// Package document converts merged HTML markup into the binary attachment
// that goes out with each mail.
//
// The Renderer interface keeps the pipeline independent of the rendering
// engine; PDF is the production implementation on top of wkhtmltopdf. Any
// engine failure surfaces as ErrRenderFailed, which the pipeline treats as
// a per-row failure rather than a fatal one.
package document
