package document

import "context"

// Renderer turns rendered HTML markup into a binary document, fully
// captured in memory. The result is owned by the caller for the duration
// of one row's processing and discarded afterwards.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}
