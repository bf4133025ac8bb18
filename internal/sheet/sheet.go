// Package sheet fills an amount-in-words column in an Excel workbook.
//
// Every row below the header rows whose amount cell holds a number gets
// the Arabic words of that amount in the words column. Rows with a blank
// amount, or one that cannot be converted, get an empty words cell, and
// conversion failures are reported, so a workbook never carries words
// that do not match its amounts.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/expensedesk/tafqeet"
	"github.com/expensedesk/tafqeet/internal/config"
)

// RowError describes an amount cell that could not be converted.
type RowError struct {
	Row   int
	Cell  string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s %q): %v", e.Row, e.Cell, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Report summarizes one run of the filler.
type Report struct {
	RunID     string
	Sheet     string
	Rows      int // rows below the header
	Converted int
	Skipped   int // rows with an empty amount cell; their words cell is cleared
	Failures  []*RowError
}

// Err returns the row errors joined together, or nil if every row was
// converted or skipped.
func (r *Report) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Filler writes amounts in words into workbooks.
type Filler struct {
	cfg config.SheetConfig
	log *zap.Logger
}

// NewFiller returns a filler for the given columns. A nil logger discards logs.
func NewFiller(cfg config.SheetConfig, log *zap.Logger) *Filler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Filler{cfg: cfg, log: log}
}

// Fill converts the amounts of the workbook at in and saves the result to
// out, or back to in when out is empty.
// Row failures do not stop the run; they are returned in the report.
func (f *Filler) Fill(ctx context.Context, in, out string) (*Report, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sheet config: %w", err)
	}
	amountCol, _ := excelize.ColumnNameToNumber(f.cfg.AmountColumn)
	wordsCol, _ := excelize.ColumnNameToNumber(f.cfg.WordsColumn)

	wb, err := excelize.OpenFile(in)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	name, err := f.sheetName(wb)
	if err != nil {
		return nil, err
	}

	rows, err := wb.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	report := &Report{RunID: uuid.NewString(), Sheet: name}
	log := f.log.With(zap.String("run_id", report.RunID), zap.String("sheet", name))
	log.Debug("filling workbook", zap.String("in", in), zap.Int("rows", len(rows)))

	for row := f.cfg.HeaderRows + 1; row <= len(rows); row++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("filling sheet %q: %w", name, err)
		}
		report.Rows++

		amountCell, _ := excelize.CoordinatesToCellName(amountCol, row)
		wordsCell, _ := excelize.CoordinatesToCellName(wordsCol, row)

		raw, err := wb.GetCellValue(name, amountCell, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading cell %s: %w", amountCell, err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			report.Skipped++
			log.Debug("empty amount", zap.Int("row", row))
			if err := wb.SetCellValue(name, wordsCell, nil); err != nil {
				return nil, fmt.Errorf("clearing cell %s: %w", wordsCell, err)
			}
			continue
		}

		a, err := parseCell(raw)
		if err != nil {
			report.Failures = append(report.Failures, &RowError{Row: row, Cell: amountCell, Value: raw, Err: err})
			log.Warn("amount not converted", zap.Int("row", row), zap.String("value", raw), zap.Error(err))
			if err := wb.SetCellValue(name, wordsCell, nil); err != nil {
				return nil, fmt.Errorf("clearing cell %s: %w", wordsCell, err)
			}
			continue
		}

		if err := wb.SetCellValue(name, wordsCell, a.Words()); err != nil {
			return nil, fmt.Errorf("writing cell %s: %w", wordsCell, err)
		}
		report.Converted++
	}

	if out == "" {
		out = in
	}
	if err := wb.SaveAs(out); err != nil {
		return nil, fmt.Errorf("saving workbook: %w", err)
	}

	log.Info("workbook filled",
		zap.String("out", out),
		zap.Int("converted", report.Converted),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failures)),
	)
	return report, nil
}

func (f *Filler) sheetName(wb *excelize.File) (string, error) {
	sheets := wb.GetSheetList()
	if f.cfg.Name == "" {
		if len(sheets) == 0 {
			return "", errors.New("workbook has no sheets")
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, f.cfg.Name) {
		return "", fmt.Errorf("sheet %q not found", f.cfg.Name)
	}
	return f.cfg.Name, nil
}

// parseCell converts a raw cell value. Numeric cells written by Excel may
// use exponent notation, which the strict decimal parser rejects, so those
// fall back to a float conversion.
func parseCell(raw string) (tafqeet.Amount, error) {
	a, err := tafqeet.ParseAmount(raw)
	if err == nil || !strings.ContainsAny(raw, "eE") {
		return a, err
	}
	fl, ferr := strconv.ParseFloat(raw, 64)
	if ferr != nil {
		return tafqeet.Amount{}, err
	}
	return tafqeet.NewAmountFromFloat64(fl)
}
