package document

import (
	"context"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// PDF implements Renderer by shelling out to the wkhtmltopdf binary. A
// fresh generator is created per call so the working buffer never outlives
// one row, whatever the exit path.
type PDF struct{}

// NewPDF creates a new PDF renderer.
func NewPDF() *PDF {
	return &PDF{}
}

var _ Renderer = (*PDF)(nil)

// Render implements Renderer.
func (p *PDF) Render(ctx context.Context, html string) ([]byte, error) {
	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	generator.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := generator.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return generator.Bytes(), nil
}
