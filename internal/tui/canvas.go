package tui

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/gridsheet/internal/grid"
)

// Content-pixel to terminal-cell scale. One terminal column is 10px of
// content width, one terminal line is 25px of content height, so a
// default cell (100x25) renders as 10 columns by 1 line.
const (
	PxPerCol = 10.0
	PxPerRow = 25.0
)

// screenCell is one terminal cell of the composited frame.
type screenCell struct {
	ch rune
	fg color.Color
	bg color.Color
}

// cellSurface is a drawing surface backed by a terminal-cell buffer.
// Drawing calls arrive in surface-local content pixels and quantize to
// cells.
type cellSurface struct {
	cols, rows int
	cells      [][]screenCell
}

var _ grid.Surface = (*cellSurface)(nil)

func newCellSurface(bounds grid.Rect) *cellSurface {
	s := &cellSurface{}
	s.resize(bounds)
	return s
}

// resize re-shapes the buffer for new bounds, dropping old content.
func (s *cellSurface) resize(bounds grid.Rect) {
	cols := int(math.Ceil(bounds.W / PxPerCol))
	rows := int(math.Ceil(bounds.H / PxPerRow))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([][]screenCell, rows)
	for i := range s.cells {
		s.cells[i] = make([]screenCell, cols)
	}
}

func (s *cellSurface) Clear() {
	for i := range s.cells {
		for j := range s.cells[i] {
			s.cells[i][j] = screenCell{}
		}
	}
}

func (s *cellSurface) FillRect(x, y, w, h float64, c color.Color) {
	c0 := clampi(int(math.Floor(x/PxPerCol)), 0, s.cols)
	c1 := clampi(int(math.Ceil((x+w)/PxPerCol)), 0, s.cols)
	r0 := clampi(int(math.Floor(y/PxPerRow)), 0, s.rows)
	r1 := clampi(int(math.Ceil((y+h)/PxPerRow)), 0, s.rows)
	for r := r0; r < r1; r++ {
		for col := c0; col < c1; col++ {
			s.cells[r][col].bg = c
		}
	}
}

// StrokeRect quantizes borders to line-drawing characters. Degenerate
// rects (zero width or height) are border segments: heavy glyphs for
// widths of 2px and up, light otherwise. Full rects draw only their
// right-edge rule; horizontal gridlines have no room at one line per
// row and the terminal row boundary already implies them.
func (s *cellSurface) StrokeRect(x, y, w, h float64, c color.Color, width float64) {
	heavy := width >= 2

	switch {
	case h == 0: // horizontal segment
		r := clampi(int(math.Round(y/PxPerRow)), 0, s.rows-1)
		c0 := clampi(int(math.Floor(x/PxPerCol)), 0, s.cols)
		c1 := clampi(int(math.Ceil((x+w)/PxPerCol)), 0, s.cols)
		ch := '─'
		if heavy {
			ch = '━'
		}
		for col := c0; col < c1; col++ {
			s.cells[r][col].ch = ch
			s.cells[r][col].fg = c
		}
	case w == 0: // vertical segment
		col := clampi(int(math.Round(x/PxPerCol)), 0, s.cols-1)
		r0 := clampi(int(math.Floor(y/PxPerRow)), 0, s.rows)
		r1 := clampi(int(math.Ceil((y+h)/PxPerRow)), 0, s.rows)
		ch := '│'
		if heavy {
			ch = '┃'
		}
		for r := r0; r < r1; r++ {
			s.cells[r][col].ch = ch
			s.cells[r][col].fg = c
		}
	default:
		// Right-edge rule of a cell rect.
		col := clampi(int(math.Round((x+w)/PxPerCol))-1, 0, s.cols-1)
		r0 := clampi(int(math.Floor(y/PxPerRow)), 0, s.rows)
		r1 := clampi(int(math.Ceil((y+h)/PxPerRow)), 0, s.rows)
		for r := r0; r < r1; r++ {
			if s.cells[r][col].ch == 0 {
				s.cells[r][col].ch = '│'
				s.cells[r][col].fg = c
			}
		}
	}
}

func (s *cellSurface) DrawText(x, y float64, text string, c color.Color) {
	r := clampi(int(math.Floor(y/PxPerRow)), 0, s.rows-1)
	col := clampi(int(math.Floor(x/PxPerCol)), 0, s.cols-1)
	for _, ch := range text {
		if col >= s.cols {
			break
		}
		s.cells[r][col].ch = ch
		s.cells[r][col].fg = c
		col++
	}
}

// MeasureText reports the content-pixel width of text at one cell per
// rune.
func (s *cellSurface) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * PxPerCol
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Canvas is the terminal framebuffer the grid draws through. It tracks
// mounted surfaces at absolute content-pixel bounds, the scroll offset,
// and composites everything into a lipgloss-styled frame. Header strips
// are pinned: row headers ignore the horizontal offset and column
// headers the vertical one.
type Canvas struct {
	cols, rows int // terminal cells available to the grid area
	scrollX    float64
	scrollY    float64
	background color.Color

	surfaces map[*cellSurface]grid.Rect
}

var _ grid.Canvas = (*Canvas)(nil)

// NewCanvas creates an empty canvas.
func NewCanvas(background color.Color) *Canvas {
	return &Canvas{
		background: background,
		surfaces:   make(map[*cellSurface]grid.Rect),
	}
}

// SetSize sets the terminal area in cells.
func (c *Canvas) SetSize(cols, rows int) {
	c.cols, c.rows = cols, rows
}

// ScrollBy moves the scroll offset by a content-pixel delta, clamped at
// the origin. Returns the new absolute offsets for Engine.OnScroll.
func (c *Canvas) ScrollBy(dx, dy float64) (x, y float64) {
	c.scrollX = math.Max(0, c.scrollX+dx)
	c.scrollY = math.Max(0, c.scrollY+dy)
	return c.scrollX, c.scrollY
}

// Scroll returns the current absolute offsets.
func (c *Canvas) Scroll() (x, y float64) { return c.scrollX, c.scrollY }

// ToContent converts a terminal mouse coordinate to content pixels,
// honoring header pinning: coordinates over the pinned strips are not
// translated by the scroll offset.
func (c *Canvas) ToContent(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * PxPerCol
	y = (float64(row) + 0.5) * PxPerRow
	if x >= grid.HeaderWidth {
		x += c.scrollX
	}
	if y >= grid.HeaderHeight {
		y += c.scrollY
	}
	return x, y
}

// Allocate implements grid.Canvas.
func (c *Canvas) Allocate(bounds grid.Rect) grid.Surface {
	s := newCellSurface(bounds)
	c.surfaces[s] = bounds
	return s
}

// Place implements grid.Canvas.
func (c *Canvas) Place(s grid.Surface, bounds grid.Rect) {
	cs := s.(*cellSurface)
	cs.resize(bounds)
	c.surfaces[cs] = bounds
}

// Release implements grid.Canvas.
func (c *Canvas) Release(s grid.Surface) {
	delete(c.surfaces, s.(*cellSurface))
}

// Viewport implements grid.Canvas: the visible content rectangle.
func (c *Canvas) Viewport() grid.Rect {
	return grid.Rect{
		X: c.scrollX,
		Y: c.scrollY,
		W: float64(c.cols) * PxPerCol,
		H: float64(c.rows) * PxPerRow,
	}
}

// layer orders surfaces for compositing: tiles first, then the pinned
// header strips on top.
func layer(bounds grid.Rect) int {
	if bounds.X == 0 || bounds.Y == 0 {
		return 1
	}
	return 0
}

// Render composites every mounted surface into a frame of the canvas
// size.
func (c *Canvas) Render() string {
	if c.cols <= 0 || c.rows <= 0 {
		return ""
	}

	frame := make([][]screenCell, c.rows)
	for i := range frame {
		frame[i] = make([]screenCell, c.cols)
		for j := range frame[i] {
			frame[i][j] = screenCell{bg: c.background}
		}
	}

	type placed struct {
		s      *cellSurface
		bounds grid.Rect
	}
	ordered := make([]placed, 0, len(c.surfaces))
	for s, b := range c.surfaces {
		ordered = append(ordered, placed{s: s, bounds: b})
	}
	sort.Slice(ordered, func(i, j int) bool {
		li, lj := layer(ordered[i].bounds), layer(ordered[j].bounds)
		if li != lj {
			return li < lj
		}
		bi, bj := ordered[i].bounds, ordered[j].bounds
		if bi.Y != bj.Y {
			return bi.Y < bj.Y
		}
		return bi.X < bj.X
	})

	for _, p := range ordered {
		c.blit(frame, p.s, p.bounds)
	}

	return renderFrame(frame)
}

// blit copies one surface into the frame at its translated position.
func (c *Canvas) blit(frame [][]screenCell, s *cellSurface, bounds grid.Rect) {
	offX, offY := c.scrollX, c.scrollY
	if bounds.X == 0 {
		offX = 0 // pinned row header strip
	}
	if bounds.Y == 0 {
		offY = 0 // pinned column header strip
	}

	baseCol := int(math.Round((bounds.X - offX) / PxPerCol))
	baseRow := int(math.Round((bounds.Y - offY) / PxPerRow))

	for r := 0; r < s.rows; r++ {
		fr := baseRow + r
		if fr < 0 || fr >= c.rows {
			continue
		}
		for col := 0; col < s.cols; col++ {
			fc := baseCol + col
			if fc < 0 || fc >= c.cols {
				continue
			}
			cell := s.cells[r][col]
			if cell.bg != nil {
				frame[fr][fc].bg = cell.bg
			}
			if cell.ch != 0 {
				frame[fr][fc].ch = cell.ch
				frame[fr][fc].fg = cell.fg
			}
		}
	}
}

// renderFrame turns the cell matrix into styled terminal lines, batching
// runs of identical styling into one lipgloss render each.
func renderFrame(frame [][]screenCell) string {
	var out strings.Builder
	for i, row := range frame {
		if i > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		var runFg, runBg color.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle()
			if runFg != nil {
				st = st.Foreground(lipColor(runFg))
			}
			if runBg != nil {
				st = st.Background(lipColor(runBg))
			}
			out.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for _, cell := range row {
			ch := cell.ch
			if ch == 0 {
				ch = ' '
			}
			if cell.fg != runFg || cell.bg != runBg {
				flush()
				runFg, runBg = cell.fg, cell.bg
			}
			run.WriteRune(ch)
		}
		flush()
	}
	return out.String()
}

// lipColor converts an image/color value to a lipgloss hex color.
func lipColor(c color.Color) lipgloss.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.Color("")
	}
	return lipgloss.Color(cc.Hex())
}
