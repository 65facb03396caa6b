package ledger

// Column numbers (1-indexed) of the membership workbook layout. The layout
// is fixed by the club's bookkeeping template, not configurable.
const (
	ColumnKey         = 1 // presence marks a data row, first empty cell ends iteration
	ColumnPaymentDate = 2 // empty means the member has not paid
	ColumnAmountPaid  = 3
	ColumnSentDate    = 4 // written by the pipeline after a confirmed send
	ColumnLastName    = 5
	ColumnFirstName   = 6
	ColumnStreet      = 8
	ColumnPostalCode  = 9
	ColumnCity        = 10
	ColumnEmail       = 12
	ColumnBirthDate   = 18
)

// firstDataRow skips the header row.
const firstDataRow = 2

// Ledger is the tabular member ledger. Implementations expose cell access
// by 1-indexed row and column and durable persistence of mutations.
type Ledger interface {
	// SheetName returns the name of the active sheet.
	SheetName() string

	// Cell returns the trimmed display value of a cell, "" when empty.
	Cell(row, col int) string

	// SetCell writes a value into a cell without persisting it.
	SetCell(row, col int, value any) error

	// Save persists all pending mutations to the backing store.
	Save() error
}
