package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/starline/internal/core"
	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/zmath"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// minRadius is the smallest radius drawn, in pixels. Thinner shapes would
// fall between pixel centers at terminal resolution.
const minRadius = 0.5

// Renderer draws a game.State into a half-block pixel screen. Shapes are
// drawn with gg at screen resolution and copied into the screen.
//
// The camera works in square virtual pixels: one terminal column wide and
// cellAspect/2 rows tall per screen pixel, so a terminal with 2:1 cells
// maps virtual pixels 1:1 onto half-blocks.
type Renderer struct {
	screen     *core.Screen
	dc         *gg.Context
	cellAspect float64
	background core.Color
	lg         *lipgloss.Renderer
}

// NewRenderer creates a renderer for cols x rows terminal cells. lg may be
// nil to use the default lipgloss renderer.
func NewRenderer(lg *lipgloss.Renderer, cols, rows int, cellAspect float64) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	if cellAspect <= 0 {
		cellAspect = 2
	}
	r := &Renderer{
		screen:     core.NewScreen(0, 0),
		cellAspect: cellAspect,
		background: toCore(level.DefaultBackground),
		lg:         lg,
	}
	r.Resize(cols, rows)
	return r
}

// Resize sets the drawing area in terminal cells.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(max(cols, 1), max(rows, 1)*2)
	if r.dc == nil || r.dc.Width() != r.screen.Width() || r.dc.Height() != r.screen.Height() {
		r.dc = gg.NewContext(r.screen.Width(), r.screen.Height())
	}
}

// CameraSize returns the camera size in virtual pixels for the current
// drawing area.
func (r *Renderer) CameraSize() (int, int) {
	rows := r.screen.Rows()
	return r.screen.Width(), max(int(float64(rows)*r.cellAspect+0.5), 1)
}

// CellToCamera converts a terminal cell to the center of that cell in
// camera pixels.
func (r *Renderer) CellToCamera(col, row int) (float32, float32) {
	return float32(col) + 0.5, float32((float64(row) + 0.5) * r.cellAspect)
}

// Screen exposes the pixel buffer.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Draw rasterizes the scene.
func (r *Renderer) Draw(st *game.State) {
	dc := r.dc
	dc.SetColor(r.background)
	dc.Clear()

	cam := st.Camera
	alpha := float64(st.LevelAlpha)

	// Virtual to screen pixel scale; x is 1:1.
	sy := float64(r.screen.Height()) / float64(cam.Height)
	unit := float64(cam.Height) / 2 // pixels per world unit

	project := func(p zmath.Vector3) (float64, float64) {
		x, y := cam.WorldToScreen(p)
		return float64(x), float64(y) * sy
	}

	// One stroke per buffer, so overlapping capsules do not blend twice.
	strokeLines := func(l *lines.Lines, c level.Color) {
		pts := l.Points()
		if len(pts) < 2 {
			return
		}
		for i := 1; i < len(pts); i += 2 {
			ax, ay := project(pts[i-1])
			bx, by := project(pts[i])
			dc.DrawLine(ax, ay, bx, by)
		}
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineWidth(2 * max(lines.LineRadius*unit, minRadius))
		dc.SetColor(c.NRGBA(alpha))
		dc.Stroke()
	}

	disc := func(p zmath.Vector3, radius float64, c color.Color) {
		x, y := project(p)
		dc.DrawCircle(x, y, max(radius, minRadius))
		dc.SetColor(c)
		dc.Fill()
	}

	strokeLines(st.LevelLines, st.Level.LineColor)
	strokeLines(st.UserLines, st.Level.UserLineColor)

	for _, c := range st.Level.Collectibles {
		disc(c.Position, float64(c.Radius)*unit, c.Color.NRGBA(alpha*float64(c.Alpha)))
	}

	b := st.Ball
	disc(b.Position, float64(b.Radius)*unit, b.Color.NRGBA(alpha*float64(b.Alpha)))

	if st.Editor.Active {
		disc(st.Editor.Pointer(), minRadius, level.White.NRGBA(0.6))
	}

	r.screen.Load(dc.Image())
}

// View converts the screen to styled half-block rows.
// Runs of cells with the same colors share one style to keep escape
// sequences short.
func (r *Renderer) View() string {
	s := r.screen
	var sb strings.Builder
	sb.Grow(s.Width()*s.Rows()*4 + s.Rows())

	for row := range s.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < s.Width() {
			top, bottom := s.Cell(col, row)
			n := 0
			for col < s.Width() {
				t, b := s.Cell(col, row)
				if t != top || b != bottom {
					break
				}
				n++
				col++
			}
			style := r.lg.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func toCore(c level.Color) core.Color {
	return core.FromFloat(c.R, c.G, c.B)
}
