package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"commitgate/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Run ID",
	"Project",
	"Branch",
	"Commit",
	"Template",
	"Accepted",
	"Failures",
	"Duration (ms)",
	"Created At",
	"Report",
}

// Writer wraps csv.Writer for exporting validation runs as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRuns converts a batch of validation runs to CSV rows and writes them.
func (w *Writer) WriteRuns(runs []domain.ValidationRun) error {
	for i := range runs {
		if err := w.csv.Write(runToRow(&runs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func runToRow(run *domain.ValidationRun) []string {
	return []string{
		run.ID.String(),
		run.Project,
		run.Branch,
		run.CommitSHA,
		run.Template,
		strconv.FormatBool(run.Accepted),
		strconv.Itoa(run.FailureCount),
		strconv.FormatInt(run.DurationMS, 10),
		run.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		run.Report,
	}
}

// WriteXLSX writes validation runs as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, runs []domain.ValidationRun) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Validation Runs"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range runs {
		strRow := runToRow(&runs[i])
		row := make([]interface{}, len(strRow))
		for j, cell := range strRow {
			row[j] = cell
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
