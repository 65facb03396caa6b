package ledger

import "errors"

var (
	// ErrOpenFailed indicates the workbook could not be opened.
	ErrOpenFailed = errors.New("failed to open ledger")

	// ErrPersistFailed indicates a cell write or workbook save failed.
	ErrPersistFailed = errors.New("failed to persist ledger")
)
