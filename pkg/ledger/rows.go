package ledger

import (
	"iter"
	"log/slog"
)

// State classifies a data row for this run.
type State int

const (
	// Eligible rows are yielded for processing.
	Eligible State = iota
	// Unpaid rows are skipped: the member has not paid yet.
	Unpaid
	// AlreadySent rows are skipped: a mail went out on a previous run.
	AlreadySent
)

// Classify derives the row state from the two cells that matter. Exactly
// one state holds for any pair of values.
func Classify(paymentDate, sentDate string) State {
	switch {
	case paymentDate == "":
		return Unpaid
	case sentDate != "":
		return AlreadySent
	default:
		return Eligible
	}
}

// EligibleRows returns a lazy, forward-only sequence of the eligible member
// rows. Iteration starts below the header and stops at the first row whose
// key cell is empty, which is the end-of-data sentinel. Skipped rows are
// logged with the reason; the sequence is meant to be consumed exactly once
// per run.
func EligibleRows(lg Ledger, log *slog.Logger) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for row := firstDataRow; ; row++ {
			if lg.Cell(row, ColumnKey) == "" {
				return
			}

			name := lg.Cell(row, ColumnFirstName) + " " + lg.Cell(row, ColumnLastName)

			switch Classify(lg.Cell(row, ColumnPaymentDate), lg.Cell(row, ColumnSentDate)) {
			case Unpaid:
				log.Info("member has not paid",
					slog.Int("row", row),
					slog.String("name", name))
			case AlreadySent:
				log.Info("mail already sent",
					slog.Int("row", row),
					slog.String("name", name),
					slog.String("sent_on", lg.Cell(row, ColumnSentDate)))
			case Eligible:
				if !yield(recordAt(lg, row)) {
					return
				}
			}
		}
	}
}
