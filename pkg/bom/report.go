package bom

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Options controls Generate.
type Options struct {
	Mode           GroupMode
	Representative Representative
	Sort           bool   // sort references within and across groups
	AuxPath        string // auxiliary BOM to append; empty disables merging
	Logger         *zap.Logger
}

// Result summarises a generated BOM.
type Result struct {
	Components int // records given to Generate
	Excluded   int // records dropped by the exclude field
	Groups     int
	AuxRows    int
}

// Generate writes the header, one row per group of equivalent records and
// then the rows of the auxiliary BOM. A missing or malformed auxiliary BOM
// is logged and skipped; only write errors are returned.
func Generate[T Record](w RowWriter, records []T, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := Result{Components: len(records)}

	filtered := FilterExcluded(records)
	res.Excluded = len(records) - len(filtered)

	groups := Group(filtered, func(a, b T) bool { return Equivalent(a, b) }, opts.Mode)
	if opts.Sort {
		SortGroups(groups)
	}
	res.Groups = len(groups)

	log.Debug("grouped components",
		zap.Int("components", res.Components),
		zap.Int("excluded", res.Excluded),
		zap.Int("groups", res.Groups),
		zap.Stringer("mode", opts.Mode),
		zap.Stringer("representative", opts.Representative))

	if err := w.WriteRow(Columns); err != nil {
		return res, fmt.Errorf("failed to write header: %w", err)
	}
	for _, g := range groups {
		if err := w.WriteRow(BuildRow(g, opts.Representative)); err != nil {
			return res, fmt.Errorf("failed to write row: %w", err)
		}
	}

	if opts.AuxPath != "" {
		n, err := appendAux(w, opts.AuxPath, log)
		if err != nil {
			return res, err
		}
		res.AuxRows = n
	}

	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("failed to flush output: %w", err)
	}
	return res, nil
}

func appendAux(w RowWriter, path string, log *zap.Logger) (int, error) {
	rows, err := ReadAux(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("no auxiliary bom found", zap.String("path", path))
		return 0, nil
	case err != nil:
		log.Warn("skipping auxiliary bom", zap.String("path", path), zap.Error(err))
		return 0, nil
	}

	log.Info("auxiliary bom found", zap.String("path", path), zap.Int("rows", len(rows)))
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return 0, fmt.Errorf("failed to write auxiliary row: %w", err)
		}
	}
	return len(rows), nil
}
