package modules

import (
	"sync"

	"github.com/hoist-run/hoist/pkg/enum"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/pkg/errors"
)

// Factory builds a new hook instance each time its module is loaded.
type Factory func() (types.Hook, error)

// Catalog is an in-process hook module catalog implementing
// types.ModuleLoader. Operators link hook modules into the binary, register
// their factories by name, and select them via the registry's module list.
type Catalog struct {
	mu        sync.Mutex
	factories map[string]Factory
}

func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Register adds a module factory under the given name, failing on duplicates.
func (c *Catalog) Register(name string, f Factory) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.factories[name]; ok {
		return errors.Wrapf(enum.ErrHookAlreadyLoaded, "module '%v' already registered", name)
	}
	c.factories[name] = f
	return nil
}

func (c *Catalog) Contains(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.factories[name]
	return ok
}

func (c *Catalog) Create(name string) (types.Hook, error) {
	c.mu.Lock()
	f, ok := c.factories[name]
	c.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(enum.ErrUnknownModule, "module '%v'", name)
	}
	return f()
}
