package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/gridsheet/internal/core/config"
	"github.com/colonyops/gridsheet/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
	theme string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter configuration file",
		UsageText: "gridsheet init [options]",
		Description: `Writes a config file with the defaults filled in, after asking which
color theme to use.

Use --yes to accept defaults without prompts.
Use --force to overwrite an existing config file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme to write (skips the prompt)",
				Destination: &cmd.theme,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath
	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	theme := cmd.theme
	if theme == "" {
		theme = styles.DefaultTheme
	}
	if _, ok := styles.GetPalette(theme); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}

	if !cmd.yes && cmd.theme == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color theme").
					Options(huh.NewOptions(styles.ThemeNames()...)...).
					Value(&theme),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("init wizard: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Theme = theme

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\n", path)
	return nil
}
