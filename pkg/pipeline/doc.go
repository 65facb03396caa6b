// Package pipeline orchestrates one mail-merge run over the member ledger.
//
// Rows are processed one at a time, in ledger order, with no parallelism:
// the ledger write-back must not race with itself, and the delivery
// channels hold stateful connections that are not assumed concurrency-safe.
// Each successful send is flushed to the workbook before the next row
// begins, trading throughput for crash safety — after a crash, re-running
// the program picks up exactly the rows that were not durably marked.
package pipeline
