// Package levels loads level packs: an ordered list of level texts described
// by a pack.yaml manifest. Packs can come from any fs.FS, so the same loader
// serves embedded packs and directories on disk.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/physics"
	"github.com/vovakirdan/starline/internal/playback"
	"github.com/vovakirdan/starline/internal/zmath"
)

// ManifestName is the manifest file looked up at the root of a pack.
const ManifestName = "pack.yaml"

// ErrEmptyPack is returned for a manifest that lists no levels.
var ErrEmptyPack = errors.New("levels: pack has no levels")

// Manifest is the on-disk description of a pack.
type Manifest struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Levels []Entry `yaml:"levels"`
}

// Entry describes one level in a manifest.
type Entry struct {
	ID            string       `yaml:"id"`
	Name          string       `yaml:"name"`
	File          string       `yaml:"file"`
	Wind          bool         `yaml:"wind"`
	Bounds        *BoundsEntry `yaml:"bounds"`
	LineColor     string       `yaml:"line_color"`
	UserLineColor string       `yaml:"user_line_color"`
}

// BoundsEntry overrides part of the playable region. Missing fields keep
// the default.
type BoundsEntry struct {
	MinX *float32 `yaml:"min_x"`
	MaxX *float32 `yaml:"max_x"`
	MinY *float32 `yaml:"min_y"`
}

// Apply returns base with the fields set in e replaced.
func (e BoundsEntry) Apply(base physics.Bounds) physics.Bounds {
	if e.MinX != nil {
		base.MinX = *e.MinX
	}
	if e.MaxX != nil {
		base.MaxX = *e.MaxX
	}
	if e.MinY != nil {
		base.MinY = *e.MinY
	}
	return base
}

// Level is a loaded level: its raw text plus presentation settings.
type Level struct {
	ID            string
	Name          string
	Text          string
	Wind          bool
	Bounds        physics.Bounds
	LineColor     level.Color
	UserLineColor level.Color
}

// Parse decodes the level text.
func (l *Level) Parse() (zmath.Vector3, []playback.MouseState, error) {
	start, log, err := playback.Parse(l.Text)
	if err != nil {
		return zmath.Zero, nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return start, log, nil
}

// Pack is an ordered set of levels.
type Pack struct {
	ID     string
	Title  string
	Levels []Level
}

// Len returns the number of levels.
func (p *Pack) Len() int {
	return len(p.Levels)
}

// Index returns the position of the level with the given ID, or -1.
func (p *Pack) Index(id string) int {
	for i := range p.Levels {
		if p.Levels[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate parses every level and returns all failures joined.
func (p *Pack) Validate() error {
	var errs []error
	for i := range p.Levels {
		if _, _, err := p.Levels[i].Parse(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads a pack from the root of fsys.
func Load(fsys fs.FS) (*Pack, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("levels: reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: parsing manifest: %w", err)
	}
	if len(m.Levels) == 0 {
		return nil, ErrEmptyPack
	}

	pack := &Pack{ID: m.ID, Title: m.Title}
	for i, e := range m.Levels {
		lvl, err := loadEntry(fsys, e)
		if err != nil {
			return nil, fmt.Errorf("levels: entry %d: %w", i, err)
		}
		pack.Levels = append(pack.Levels, lvl)
	}
	return pack, nil
}

func loadEntry(fsys fs.FS, e Entry) (Level, error) {
	if e.File == "" {
		return Level{}, errors.New("missing file")
	}
	text, err := fs.ReadFile(fsys, e.File)
	if err != nil {
		return Level{}, err
	}

	lvl := Level{
		ID:            e.ID,
		Name:          e.Name,
		Text:          string(text),
		Wind:          e.Wind,
		Bounds:        physics.DefaultBounds,
		LineColor:     level.DefaultLineColor,
		UserLineColor: level.DefaultUserColor,
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(path.Base(e.File), path.Ext(e.File))
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if e.Bounds != nil {
		lvl.Bounds = e.Bounds.Apply(physics.DefaultBounds)
	}
	if e.LineColor != "" {
		if lvl.LineColor, err = ParseColor(e.LineColor); err != nil {
			return Level{}, err
		}
	}
	if e.UserLineColor != "" {
		if lvl.UserLineColor, err = ParseColor(e.UserLineColor); err != nil {
			return Level{}, err
		}
	}
	return lvl, nil
}

// LoadDir reads a pack from a directory containing pack.yaml.
func LoadDir(dir string) (*Pack, error) {
	return Load(os.DirFS(dir))
}

// LoadFile wraps a single level text file in a one-level pack.
func LoadFile(filename string) (*Pack, error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return FromText(id, string(text)), nil
}

// FromText wraps a level text in a one-level pack with default bounds and
// colors.
func FromText(id, text string) *Pack {
	return &Pack{
		ID:    id,
		Title: id,
		Levels: []Level{{
			ID:            id,
			Name:          id,
			Text:          text,
			Bounds:        physics.DefaultBounds,
			LineColor:     level.DefaultLineColor,
			UserLineColor: level.DefaultUserColor,
		}},
	}
}

// Open loads a pack from a path that is either a pack directory or a single
// level file.
func Open(p string) (*Pack, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if info.IsDir() {
		return LoadDir(p)
	}
	return LoadFile(p)
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(s string) (level.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return level.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return level.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c level.Color) string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}
