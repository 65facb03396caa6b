package ledger

import (
	"strconv"
	"strings"
)

// Membership sheets are named "LEDEN <season>", e.g. "Leden 2025-2026".
const sheetNamePrefix = "LEDEN "

// Record is one eligible member row, snapshotted from the ledger. Records
// are created fresh per iteration step and never mutated; the row number is
// only used to address the sent-date write-back.
type Record struct {
	Row         int
	FirstName   string
	LastName    string
	Street      string
	PostalCode  string
	City        string
	BirthDate   string
	AmountPaid  string
	PaymentDate string
	Email       string
	Season      string
}

// FullName returns the recipient display name.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Fields returns the placeholder map consumed by merge templates.
func (r Record) Fields() map[string]string {
	return map[string]string{
		"Row":         strconv.Itoa(r.Row),
		"FirstName":   r.FirstName,
		"LastName":    r.LastName,
		"Street":      r.Street,
		"PostalCode":  r.PostalCode,
		"City":        r.City,
		"BirthDate":   r.BirthDate,
		"AmountPaid":  r.AmountPaid,
		"PaymentDate": r.PaymentDate,
		"Email":       r.Email,
		"Season":      r.Season,
	}
}

// SeasonLabel derives the season label from a sheet name by upper-casing it
// and stripping the membership prefix.
func SeasonLabel(sheetName string) string {
	return strings.TrimPrefix(strings.ToUpper(sheetName), sheetNamePrefix)
}

func recordAt(lg Ledger, row int) Record {
	return Record{
		Row:         row,
		FirstName:   lg.Cell(row, ColumnFirstName),
		LastName:    lg.Cell(row, ColumnLastName),
		Street:      lg.Cell(row, ColumnStreet),
		PostalCode:  lg.Cell(row, ColumnPostalCode),
		City:        lg.Cell(row, ColumnCity),
		BirthDate:   lg.Cell(row, ColumnBirthDate),
		AmountPaid:  lg.Cell(row, ColumnAmountPaid),
		PaymentDate: lg.Cell(row, ColumnPaymentDate),
		Email:       lg.Cell(row, ColumnEmail),
		Season:      SeasonLabel(lg.SheetName()),
	}
}
