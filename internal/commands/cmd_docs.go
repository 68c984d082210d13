package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/gridsheet/internal/core/styles"
)

type DocsCmd struct {
	flags *Flags
	plain bool
}

func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "docs",
		Usage: "Show the built-in manual",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown without terminal rendering",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	if cmd.plain {
		fmt.Fprint(w, manual)
		return nil
	}

	width := 100
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 && tw < width {
		width = tw
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(manual)
	if err != nil {
		return fmt.Errorf("render manual: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

const manual = `# gridsheet

A terminal spreadsheet over a 1,000,000 × 1,000 virtual grid. Only the
visible window of cells exists at any time; everything else is mounted
on demand as you scroll.

## Moving around

| Keys | Action |
|------|--------|
| arrows / hjkl | move the cursor |
| shift+arrows | extend the selection |
| mouse wheel | scroll the viewport |
| click + drag | select a range (auto-scrolls at the edges) |

Clicking a row or column header selects the whole row or column.
Dragging across headers selects a span of them.

## Editing

| Keys | Action |
|------|--------|
| enter / i | edit the cell under the cursor |
| enter (while editing) | commit and move down |
| esc | cancel the edit |
| backspace / delete | clear the cell |
| ctrl+z / u | undo |
| ctrl+y | redo |

Every edit and resize is undoable. The status bar shows the undo depth
and live statistics (count, sum, avg, min, max) for the numeric values
in the current selection.

## Resizing

Hover within a few pixels of a boundary in the row or column header:
the status bar switches to "drag to resize". Drag to set the new size.
Sizes clamp between 25 and 500 pixels for rows, 50 and 500 for columns.

## Sheets on disk

Sheet files are JSON documents:

    {
      "name": "budget",
      "cells": [{"row": 1, "col": 2, "value": "42"}],
      "rows": {"5": 100},
      "columns": {"2": 260}
    }

Load them at startup with --open (globs work):

    gridsheet --open 'sheets/**/*.json'

Or validate them without opening the grid:

    gridsheet import --json 'sheets/**/*.json'

## Configuration

The config file lives at ~/.config/gridsheet/config.yaml; run
'gridsheet init' to generate one. It sets the theme, how many 25-index
blocks each axis keeps mounted, the default cell geometry and logging.
`
