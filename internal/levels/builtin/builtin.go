// Package builtin registers the level pack shipped inside the binary.
package builtin

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/registry"
)

// ID is the registry ID of the embedded pack.
const ID = "builtin"

//go:embed pack
var packFS embed.FS

func init() {
	registry.Register(ID, Load)
}

// Load parses the embedded pack.
func Load() (*levels.Pack, error) {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		return nil, err
	}
	return levels.Load(sub)
}
