package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailmerge/pkg/config"
	"github.com/dmitrymomot/mailmerge/pkg/document"
	"github.com/dmitrymomot/mailmerge/pkg/ledger"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/merge"
	"github.com/dmitrymomot/mailmerge/pkg/pipeline"
	"github.com/dmitrymomot/mailmerge/pkg/transport"
)

func main() {
	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         os.Getenv("SENTRY_DSN"),
		Environment: os.Getenv("SENTRY_ENVIRONMENT"),
	}).With(slog.String("run_id", uuid.NewString()))

	log.Info("mail merge dispatcher starting")

	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		log.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.Error("run aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the collaborators and drives the pipeline. Per-row failures are
// handled inside the pipeline and never reach here; only configuration
// failures and cancellation do.
func run(ctx context.Context, opts *config.Options, log *slog.Logger) error {
	lg, err := ledger.OpenExcel(opts.LedgerPath)
	if err != nil {
		return err
	}
	defer lg.Close()

	docTemplate, err := os.ReadFile(opts.DocumentTemplate)
	if err != nil {
		return fmt.Errorf("read document template: %w", err)
	}

	bodyRaw, err := os.ReadFile(opts.BodyTemplate)
	if err != nil {
		return fmt.Errorf("read body template: %w", err)
	}
	bodyTemplate, err := merge.ParseTemplate(bodyRaw)
	if err != nil {
		return fmt.Errorf("parse body template: %w", err)
	}

	// Frontmatter subject in the body template beats the flag.
	subject := opts.Subject
	if s := bodyTemplate.Subject(); s != "" {
		subject = s
	}

	tp, err := transport.Select(transport.Config{
		APIKey:    opts.SendGridKey,
		ServerURL: opts.SMTPURL,
	}, log)
	if err != nil {
		return err
	}

	p := pipeline.New(lg, document.NewPDF(), tp, pipeline.Config{
		DocumentTemplate: string(docTemplate),
		BodyTemplate:     bodyTemplate.Body,
		Subject:          subject,
		FromAddress:      opts.FromAddress,
		FromName:         opts.FromName,
		AttachmentName:   opts.AttachmentName,
	}, log)

	return p.Run(ctx)
}
