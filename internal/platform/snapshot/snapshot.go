// Package snapshot draws a level to a PNG image with gg. It renders the
// same capsule and circle meshes the game builds for its lines, stars and
// ball.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/zmath"
)

// circleSides is the tessellation of stars and the ball.
const circleSides = 24

// ErrEmptySize is returned for a zero or negative image size.
var ErrEmptySize = errors.New("snapshot: image size must be positive")

// Options controls what is drawn.
type Options struct {
	Stars   bool   // Draw collectibles
	Ball    bool   // Draw the ball
	Caption string // Drawn in the top-left corner when not empty
}

// Render draws st at the size of its camera. Call
// st.Playback.PlayToCompletion first to show the whole level.
func Render(st *game.State, opts Options) (image.Image, error) {
	w, h := st.Camera.Width, st.Camera.Height
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySize
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(level.DefaultBackground.NRGBA(1))
	dc.Clear()

	project := func(p zmath.Vector3) (float64, float64) {
		x, y := st.Camera.WorldToScreen(p)
		return float64(x), float64(y)
	}

	alpha := float64(st.LevelAlpha)
	drawMesh(dc, project, st.LevelLines.Mesh(), st.Level.LineColor.NRGBA(alpha))
	drawMesh(dc, project, st.UserLines.Mesh(), st.Level.UserLineColor.NRGBA(alpha))

	if opts.Stars {
		for _, c := range st.Level.Collectibles {
			m := lines.CircleMesh(c.Position, c.Radius, circleSides)
			drawMesh(dc, project, m, c.Color.NRGBA(alpha*float64(c.Alpha)))
		}
	}

	if opts.Ball {
		b := st.Ball
		m := lines.CircleMesh(b.Position, b.Radius, circleSides)
		drawMesh(dc, project, m, b.Color.NRGBA(alpha*float64(b.Alpha)))
	}

	if opts.Caption != "" {
		if err := drawCaption(dc, opts.Caption); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// Save renders st and writes it to path as PNG.
func Save(st *game.State, path string, opts Options) error {
	img, err := Render(st, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("snapshot: cannot write %s: %w", path, err)
	}
	return nil
}

// drawMesh fills m as one path. Triangles are wound the same way so the
// nonzero rule fills their union and overlaps are painted once.
func drawMesh(dc *gg.Context, project func(zmath.Vector3) (float64, float64), m lines.Mesh, c color.Color) {
	if m.Empty() {
		return
	}
	for i := range m.Indices {
		a, b, d := m.Triangle(i)
		ax, ay := project(a)
		bx, by := project(b)
		dx, dy := project(d)
		if (bx-ax)*(dy-ay)-(by-ay)*(dx-ax) < 0 {
			bx, by, dx, dy = dx, dy, bx, by
		}
		dc.MoveTo(ax, ay)
		dc.LineTo(bx, by)
		dc.LineTo(dx, dy)
		dc.ClosePath()
	}
	dc.SetFillRule(gg.FillRuleWinding)
	dc.SetColor(c)
	dc.Fill()
}

// drawCaption writes text with the Go Mono face, scaled to the image height.
func drawCaption(dc *gg.Context, text string) error {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("snapshot: failed to parse font: %w", err)
	}

	size := max(float64(dc.Height())/36, 8)
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.SetColor(level.White.NRGBA(0.8))
	dc.DrawStringAnchored(text, size, size, 0, 1)
	return nil
}
