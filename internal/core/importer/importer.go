// Package importer loads JSON sheet files into the cell store and the
// axis override maps.
//
// A sheet document looks like:
//
//	{
//	  "name": "budget",
//	  "cells": [{"row": 1, "col": 2, "value": "42"}],
//	  "rows": {"5": 100},
//	  "columns": {"2": 260}
//	}
//
// Cells outside the grid bounds are skipped with a warning; size
// overrides are clamped to the axis limits like an interactive resize.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/cells"
	"github.com/colonyops/gridsheet/internal/core/logging"
	"github.com/colonyops/gridsheet/internal/grid"
)

// Cell is one cell entry in a sheet document.
type Cell struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

// Sheet is the JSON document format.
type Sheet struct {
	Name    string          `json:"name,omitempty"`
	Cells   []Cell          `json:"cells"`
	Rows    map[int]float64 `json:"rows,omitempty"`
	Columns map[int]float64 `json:"columns,omitempty"`
}

// Result summarizes one import.
type Result struct {
	Files    int `json:"files"`
	Cells    int `json:"cells"`
	RowSizes int `json:"row_sizes"`
	ColSizes int `json:"col_sizes"`
	Skipped  int `json:"skipped"`
}

func (r *Result) add(o Result) {
	r.Files += o.Files
	r.Cells += o.Cells
	r.RowSizes += o.RowSizes
	r.ColSizes += o.ColSizes
	r.Skipped += o.Skipped
}

// Importer writes sheet documents into the live store and axes.
type Importer struct {
	store *cells.Store
	rows  *grid.Axis
	cols  *grid.Axis
	log   zerolog.Logger
}

// New creates an importer over the store and both axes.
func New(store *cells.Store, rows, cols *grid.Axis) *Importer {
	return &Importer{
		store: store,
		rows:  rows,
		cols:  cols,
		log:   logging.Component("importer"),
	}
}

// ImportGlobs expands each doublestar pattern and imports every match.
// A pattern that matches nothing is an error; a typo'd glob silently
// importing zero files is worse than failing.
func (i *Importer) ImportGlobs(ctx context.Context, patterns []string) (Result, error) {
	var files []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return Result{}, fmt.Errorf("glob %q: %w", p, err)
		}
		if len(matches) == 0 {
			return Result{}, fmt.Errorf("glob %q matched no files", p)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	var total Result
	for _, f := range files {
		r, err := i.ImportFile(ctx, f)
		if err != nil {
			return total, fmt.Errorf("import %s: %w", f, err)
		}
		total.add(r)
	}
	return total, nil
}

// ImportFile imports one sheet file.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return i.Import(logging.WithSource(ctx, path), f)
}

// Import decodes one sheet document from r and applies it.
func (i *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	var sheet Sheet
	if err := json.NewDecoder(r).Decode(&sheet); err != nil {
		return Result{}, fmt.Errorf("decode JSON: %w", err)
	}
	return i.ImportSheet(ctx, sheet), nil
}

// ImportSheet applies an already-decoded sheet document.
func (i *Importer) ImportSheet(ctx context.Context, sheet Sheet) Result {
	if sheet.Name != "" {
		ctx = logging.WithSheet(ctx, sheet.Name)
	}

	res := Result{Files: 1}
	for _, c := range sheet.Cells {
		if c.Row < 1 || c.Row > i.rows.Defaults.Count || c.Col < 1 || c.Col > i.cols.Defaults.Count {
			res.Skipped++
			i.log.Warn().Ctx(ctx).
				Int("row", c.Row).
				Int("col", c.Col).
				Msg("cell outside grid bounds, skipped")
			continue
		}
		i.store.Set(c.Row, c.Col, c.Value)
		res.Cells++
	}

	res.RowSizes = i.applySizes(ctx, i.rows, sheet.Rows, &res)
	res.ColSizes = i.applySizes(ctx, i.cols, sheet.Columns, &res)

	i.log.Info().Ctx(ctx).
		Int("cells", res.Cells).
		Int("row_sizes", res.RowSizes).
		Int("col_sizes", res.ColSizes).
		Int("skipped", res.Skipped).
		Msg("sheet imported")
	return res
}

// applySizes writes size overrides for one axis, clamping each like an
// interactive resize. Out-of-range indices are skipped.
func (i *Importer) applySizes(ctx context.Context, axis *grid.Axis, sizes map[int]float64, res *Result) int {
	applied := 0
	for index, size := range sizes {
		if index < 1 || index > axis.Defaults.Count {
			res.Skipped++
			i.log.Warn().Ctx(ctx).
				Stringer("axis", axis.Orientation).
				Int("index", index).
				Msg("size override outside grid bounds, skipped")
			continue
		}
		axis.Overrides.Set(index, axis.Clamp(size))
		applied++
	}
	return applied
}
