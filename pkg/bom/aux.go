package bom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrAuxSchema is returned when an auxiliary BOM header lacks a column of
// Columns.
var ErrAuxSchema = errors.New("auxiliary bom must contain columns " + strings.Join(Columns, ", "))

// AuxPath returns the auxiliary BOM path for an output file:
// "out/bom.csv" becomes "out/bom-aux.csv".
func AuxPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + "-aux.csv"
}

// ReadAux reads an auxiliary BOM and returns its data rows projected onto
// Columns. Missing cells become empty strings. A missing file yields an
// error satisfying errors.Is(err, os.ErrNotExist); a header without every
// column of Columns yields ErrAuxSchema.
func ReadAux(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open auxiliary bom: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read auxiliary bom %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", path, ErrAuxSchema)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// A repeated header name refers to its last column.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	positions := make([]int, len(Columns))
	var missing []string
	for i, col := range Columns {
		pos, ok := index[col]
		if !ok {
			missing = append(missing, col)
		}
		positions[i] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s lacks %s: %w", path, strings.Join(missing, ", "), ErrAuxSchema)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(Columns))
		for i, pos := range positions {
			if pos < len(rec) {
				row[i] = rec[pos]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
