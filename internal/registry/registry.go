// Package registry provides a global registry of named shape catalogs.
// Catalogs register themselves in init() functions, allowing config files
// and the CLI to select a catalog by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

// CatalogInfo contains metadata about a registered catalog.
type CatalogInfo struct {
	Name        string
	Description string
	Shapes      int
	Duplicates  int
}

// Factory returns a fresh copy of a catalog's shapes.
type Factory func() []tetris.Shape

type entry struct {
	description string
	factory     Factory
}

var (
	catalogs = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a catalog to the registry.
// Panics if a catalog with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalogs[name]; exists {
		panic(fmt.Sprintf("registry: catalog %q already registered", name))
	}
	catalogs[name] = entry{description: description, factory: f}
}

// List returns information about all registered catalogs, sorted by name.
func List() []CatalogInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CatalogInfo, 0, len(catalogs))
	for name, e := range catalogs {
		shapes := e.factory()
		result = append(result, CatalogInfo{
			Name:        name,
			Description: e.description,
			Shapes:      len(shapes),
			Duplicates:  len(tetris.Duplicates(shapes)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the shapes of a catalog by name.
// Returns an error if the name is not registered.
func Lookup(name string) ([]tetris.Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown catalog %q", name)
	}
	return e.factory(), nil
}

// Exists checks if a catalog with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := catalogs[name]
	return ok
}
