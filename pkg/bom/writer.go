package bom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowWriter receives BOM rows.
type RowWriter interface {
	WriteRow(cells []string) error
	Flush() error
}

// CSVWriter writes rows with every cell quoted, "," between cells and "\n"
// after each row. Embedded quotes are doubled.
type CSVWriter struct {
	w *bufio.Writer
}

// NewCSVWriter returns a CSVWriter writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w)}
}

// WriteRow writes one row.
func (cw *CSVWriter) WriteRow(cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			cw.w.WriteByte(',')
		}
		cw.w.WriteByte('"')
		cw.w.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		cw.w.WriteByte('"')
	}
	return cw.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (cw *CSVWriter) Flush() error {
	return cw.w.Flush()
}

// XLSXSheet is the worksheet name used by XLSXWriter.
const XLSXSheet = "BOM"

// XLSXWriter collects rows into a workbook written out on Flush.
type XLSXWriter struct {
	f   *excelize.File
	w   io.Writer
	row int
}

// NewXLSXWriter creates an empty workbook that Flush writes to w.
func NewXLSXWriter(w io.Writer) (*XLSXWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	return &XLSXWriter{f: f, w: w}, nil
}

// WriteRow appends one row to the sheet.
func (xw *XLSXWriter) WriteRow(cells []string) error {
	xw.row++
	cell, err := excelize.CoordinatesToCellName(1, xw.row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := xw.f.SetSheetRow(XLSXSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", xw.row, err)
	}
	return nil
}

// Flush writes the workbook.
func (xw *XLSXWriter) Flush() error {
	if _, err := xw.f.WriteTo(xw.w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Close releases the workbook.
func (xw *XLSXWriter) Close() error {
	return xw.f.Close()
}
