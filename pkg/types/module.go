package types

// ModuleLoader resolves hook module names to instances. It is the boundary to
// whatever mechanism discovers and builds hook modules; the registry only ever
// talks to this interface.
type ModuleLoader interface {
	// Contains reports whether a hook module with the given name is available.
	Contains(name string) bool
	// Create instantiates a new hook from the named module.
	Create(name string) (Hook, error)
}
