package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/gridsheet/internal/core/importer"
	"github.com/colonyops/gridsheet/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	open  []string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "open",
			Aliases:     []string{"o"},
			Usage:       "sheet files or globs to load on startup (repeatable)",
			Sources:     cli.EnvVars("GRIDSHEET_OPEN"),
			Destination: &cmd.open,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	model := tui.New(tui.Options{Config: cmd.flags.Config})

	if len(cmd.open) > 0 {
		eng := model.Engine()
		imp := importer.New(model.Store(), eng.Rows().Axis(), eng.Cols().Axis())
		res, err := imp.ImportGlobs(ctx, cmd.open)
		if err != nil {
			return fmt.Errorf("load sheets: %w", err)
		}
		log.Info().
			Int("files", res.Files).
			Int("cells", res.Cells).
			Int("skipped", res.Skipped).
			Msg("loaded sheets")
		eng.RerenderAll()
	}

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
