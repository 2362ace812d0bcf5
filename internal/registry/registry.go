// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, so commands can discover
// and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/starline/internal/levels"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory loads a fresh copy of a pack.
type Factory func() (*levels.Pack, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from a pack's init() function.
// Panics if the ID is already registered or the pack does not load.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	// Load once up front so a broken embedded pack fails at startup.
	p, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: pack %q: %v", id, err))
	}

	factories[id] = f
	infos[id] = PackInfo{ID: id, Title: p.Title, Levels: p.Len()}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads a pack by its ID.
func Create(id string) (*levels.Pack, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}
	return f()
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
