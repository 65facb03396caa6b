package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestWorkbook(t *testing.T) *Excel {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Leden 2025-2026"))
	t.Cleanup(func() { _ = f.Close() })

	return &Excel{file: f, sheet: "Leden 2025-2026"}
}

func TestExcel_CellRoundTrip(t *testing.T) {
	t.Parallel()

	lg := newTestWorkbook(t)

	require.NoError(t, lg.SetCell(2, ColumnFirstName, "Ann"))
	require.Equal(t, "Ann", lg.Cell(2, ColumnFirstName))
	require.Equal(t, "Leden 2025-2026", lg.SheetName())
}

func TestExcel_EmptyCell(t *testing.T) {
	t.Parallel()

	lg := newTestWorkbook(t)

	require.Empty(t, lg.Cell(2, ColumnKey))
}

func TestExcel_CellTrimsWhitespace(t *testing.T) {
	t.Parallel()

	lg := newTestWorkbook(t)

	require.NoError(t, lg.SetCell(2, ColumnEmail, "  ann@example.com \n"))
	require.Equal(t, "ann@example.com", lg.Cell(2, ColumnEmail))
}

func TestExcel_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	lg := newTestWorkbook(t)

	require.Empty(t, lg.Cell(0, 0))
	require.ErrorIs(t, lg.SetCell(0, 0, "x"), ErrPersistFailed)
}

func TestOpenExcel_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := OpenExcel("testdata/does-not-exist.xlsx")
	require.ErrorIs(t, err, ErrOpenFailed)
}
