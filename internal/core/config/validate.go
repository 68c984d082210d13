package config

import (
	"fmt"
	"strings"

	"github.com/colonyops/gridsheet/internal/core/styles"
	"github.com/colonyops/gridsheet/internal/grid"
)

// Window length bounds. The lower bounds keep at least one full block of
// margin around the viewport; the upper bounds cap mounted surfaces.
const (
	minRowBlocks = 2
	maxRowBlocks = 100
	minColBlocks = 2
	maxColBlocks = 40
)

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	var errs []string

	if _, ok := styles.GetPalette(c.Theme); !ok {
		errs = append(errs, fmt.Sprintf(
			"unknown theme %q (built-in: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}

	if c.Viewport.RowBlocks < minRowBlocks || c.Viewport.RowBlocks > maxRowBlocks {
		errs = append(errs, fmt.Sprintf(
			"viewport.row_blocks %d outside [%d, %d]", c.Viewport.RowBlocks, minRowBlocks, maxRowBlocks))
	}
	if c.Viewport.ColBlocks < minColBlocks || c.Viewport.ColBlocks > maxColBlocks {
		errs = append(errs, fmt.Sprintf(
			"viewport.col_blocks %d outside [%d, %d]", c.Viewport.ColBlocks, minColBlocks, maxColBlocks))
	}

	rows := grid.RowDefaults()
	if c.Sizes.RowHeight < rows.Min || c.Sizes.RowHeight > rows.Max {
		errs = append(errs, fmt.Sprintf(
			"sizes.row_height %g outside [%g, %g]", c.Sizes.RowHeight, rows.Min, rows.Max))
	}
	cols := grid.ColumnDefaults()
	if c.Sizes.ColumnWidth < cols.Min || c.Sizes.ColumnWidth > cols.Max {
		errs = append(errs, fmt.Sprintf(
			"sizes.column_width %g outside [%g, %g]", c.Sizes.ColumnWidth, cols.Min, cols.Max))
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
