package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailmerge/pkg/document"
	"github.com/dmitrymomot/mailmerge/pkg/ledger"
	"github.com/dmitrymomot/mailmerge/pkg/merge"
	"github.com/dmitrymomot/mailmerge/pkg/transport"
)

// dateLayout is the day-month-year format written into templates and the
// sent-date cell.
const dateLayout = "02-01-2006"

// Config holds the run-constant inputs of a pipeline.
type Config struct {
	// DocumentTemplate is the HTML template merged per row and rendered
	// into the attachment.
	DocumentTemplate string

	// BodyTemplate is the plain-text mail body template merged per row.
	BodyTemplate string

	// Subject, FromAddress and FromName apply to every outgoing mail.
	Subject     string
	FromAddress string
	FromName    string

	// AttachmentName is the filename the rendered document is attached as.
	AttachmentName string
}

// Pipeline drives one mail-merge run: it walks the eligible ledger rows in
// order and, for each one, renders the document, renders the body, sends
// the mail and — only after the channel confirmed the send — writes the
// sent date back and saves the ledger before touching the next row.
// The pipeline is the sole writer of the ledger for the run's duration.
type Pipeline struct {
	ledger    ledger.Ledger
	renderer  document.Renderer
	transport transport.Transport
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClock replaces the clock used for the per-row date field and the
// sent-date marker.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a pipeline over an exclusively-owned ledger handle.
func New(lg ledger.Ledger, renderer document.Renderer, tp transport.Transport, cfg Config, log *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		ledger:    lg,
		renderer:  renderer,
		transport: tp,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every eligible row, strictly sequentially. Failures are
// isolated per row: a row that cannot be rendered, sent or persisted is
// logged and left unmarked for the next run, and never aborts the
// remaining rows. Run only returns an error when ctx is done.
func (p *Pipeline) Run(ctx context.Context) error {
	for record := range ledger.EligibleRows(p.ledger, p.log) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.process(ctx, record); err != nil {
			p.log.Error("cannot send mail for row",
				slog.Int("row", record.Row),
				slog.String("name", record.FullName()),
				slog.String("error", err.Error()))
		}
	}
	return ctx.Err()
}

// process handles a single row end to end. The ledger is only mutated after
// the transport confirmed the send, and saved before process returns, so an
// observer between rows never sees a marker without a preceding successful
// send. A failure after the send (the persist step) is the accepted
// duplicate-send risk: the mail is out but the row stays unmarked.
func (p *Pipeline) process(ctx context.Context, record ledger.Record) error {
	now := p.now()

	fields := record.Fields()
	fields["Date"] = now.Format(dateLayout)

	attachment, err := p.renderer.Render(ctx, merge.Render(p.cfg.DocumentTemplate, fields))
	if err != nil {
		return err
	}

	msg := &transport.Message{
		From:     p.cfg.FromAddress,
		FromName: p.cfg.FromName,
		To:       record.Email,
		ToName:   record.FullName(),
		Subject:  p.cfg.Subject,
		Body:     merge.Render(p.cfg.BodyTemplate, fields),
		Attachment: transport.Attachment{
			Filename: p.cfg.AttachmentName,
			Content:  attachment,
		},
	}

	if err := p.transport.Send(ctx, msg); err != nil {
		return err
	}

	if err := p.ledger.SetCell(record.Row, ledger.ColumnSentDate, now); err != nil {
		return err
	}
	return p.ledger.Save()
}
