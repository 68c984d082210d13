// Package tui hosts the terminal spreadsheet application: a bubbletea
// model owning the grid engine, the cell store, history and statistics,
// rendering through the cell-framebuffer canvas.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/cells"
	"github.com/colonyops/gridsheet/internal/core/config"
	"github.com/colonyops/gridsheet/internal/core/history"
	"github.com/colonyops/gridsheet/internal/core/logging"
	"github.com/colonyops/gridsheet/internal/core/stats"
	"github.com/colonyops/gridsheet/internal/core/styles"
	"github.com/colonyops/gridsheet/internal/grid"
)

// UIState represents the current input mode of the TUI.
type UIState int

// The TUI's input modes.
const (
	stateGrid UIState = iota
	stateEditing
)

// Options configures the TUI.
type Options struct {
	Config *config.Config
	// Store carries pre-imported cell values; nil starts empty.
	Store *cells.Store
	// Engine overrides the grid engine; nil builds one (tests inject a
	// prepared engine).
	Engine *grid.Engine
	Canvas *Canvas
}

// selectionProxy breaks the construction cycle between the stats engine
// (needs a selection source) and the grid engine (needs the stats
// notifier).
type selectionProxy struct {
	engine *grid.Engine
}

func (p *selectionProxy) Selection() grid.Selection {
	if p.engine == nil {
		return grid.Selection{}
	}
	return p.engine.Selection()
}

// Model is the bubbletea application model.
type Model struct {
	cfg   *config.Config
	state UIState
	log   zerolog.Logger

	width  int
	height int

	canvas  *Canvas
	engine  *grid.Engine
	store   *cells.Store
	stats   *stats.Engine
	history *history.Stack

	editor textinput.Model
	keys   KeyMap

	// cursorRow/cursorCol is the keyboard anchor, mirrored into the
	// engine's selection.
	cursorRow int
	cursorCol int

	errText string
}

// New builds a fully wired model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	styles.SetTheme(cfg.Theme)
	palette := styles.CurrentPalette

	store := opts.Store
	if store == nil {
		store = cells.NewStore()
	}

	canvas := opts.Canvas
	if canvas == nil {
		canvas = NewCanvas(palette.Background)
	}

	stack := history.NewStack()
	proxy := &selectionProxy{}
	statsEngine := stats.New(store, proxy)

	engine := opts.Engine
	if engine == nil {
		// The nudge closure needs the engine, which needs the config
		// holding the closure; the pointer is filled in right after New.
		var eng *grid.Engine
		engine = grid.New(canvas, grid.Config{
			VisibleRowBlocks: cfg.Viewport.RowBlocks,
			VisibleColBlocks: cfg.Viewport.ColBlocks,
			RowHeight:        cfg.Sizes.RowHeight,
			ColumnWidth:      cfg.Sizes.ColumnWidth,
			Theme:            styles.GridTheme(palette),
			Cells:            store,
			History:          stack,
			Stats:            statsEngine,
			Nudge: func(dx, dy float64) {
				x, y := canvas.ScrollBy(dx, dy)
				if eng != nil {
					eng.OnScroll(x, y)
				}
			},
		})
		eng = engine
	}
	proxy.engine = engine

	editor := textinput.New()
	editor.Prompt = "= "
	editor.CharLimit = 256

	return Model{
		cfg:       cfg,
		state:     stateGrid,
		log:       logging.Component("tui"),
		canvas:    canvas,
		engine:    engine,
		store:     store,
		stats:     statsEngine,
		history:   stack,
		editor:    editor,
		keys:      DefaultKeyMap(),
		cursorRow: 1,
		cursorCol: 1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Engine exposes the grid engine for tests.
func (m Model) Engine() *grid.Engine { return m.engine }

// Store exposes the cell store for tests.
func (m Model) Store() *cells.Store { return m.store }

// History exposes the undo stack for tests.
func (m Model) History() *history.Stack { return m.history }
