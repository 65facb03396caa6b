// Package ledger reads and updates the club's Excel member ledger.
//
// The ledger is the single source of truth for the mail merge: the payment
// date cell decides whether a member is due a mail, and the sent date cell
// is the only state the dispatcher ever writes back. A member row is in
// exactly one of three states per run:
//
//   - Unpaid: payment date cell empty, skipped and logged
//   - AlreadySent: sent date cell filled, skipped and logged
//   - Eligible: yielded for processing
//
// EligibleRows exposes the eligible rows as a lazy iter.Seq so the pipeline
// can persist each success before the next row is even read. The Ledger
// interface keeps the workbook format behind a narrow get/set/save surface;
// Excel is the excelize-backed implementation used in production.
package ledger
