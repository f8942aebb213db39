package hooks

import (
	"strings"
	"sync"

	"github.com/hoist-run/hoist/pkg/config"
	"github.com/hoist-run/hoist/pkg/enum"
	"github.com/hoist-run/hoist/pkg/impl/logging"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var DefaultPoolSize = 32

type Options struct {
	PoolSize int                  // Fan-out pool size for the async docker environment call site
	Journal  config.JournalConfig // Hook journal config, disabled when Enabled is false
}

func (o *Options) validate() {
	if o.PoolSize <= 0 {
		o.PoolSize = DefaultPoolSize
	}
}

// Manager owns the set of loaded hook modules and dispatches lifecycle call
// sites across them. Hooks compose in registration order: for decorator call
// sites the last hook returning a replacement wins, for the docker environment
// aggregation the last registered hook wins on variable name conflicts.
//
// Load, Unload, HooksAvailable and the synchronous call sites serialize on one
// mutex, so the hook set cannot change underneath an in-flight composition.
// The async aggregation only holds the mutex while copying the hook list.
type Manager struct {
	mu      sync.Mutex
	names   []string // registration order, iteration order for every call site
	hooks   map[string]types.Hook
	loader  types.ModuleLoader
	pool    *ants.Pool
	journal *Journal
	lg      *zerolog.Logger
}

func New(opt *Options, loader types.ModuleLoader, lg *zerolog.Logger) (m *Manager, err error) {
	opt.validate()

	m = &Manager{
		hooks:  make(map[string]types.Hook),
		loader: loader,
		lg:     lg,
	}
	m.pool, err = ants.NewPool(opt.PoolSize)
	if err != nil {
		return nil, err
	}

	if opt.Journal.Enabled {
		m.journal, err = NewJournal(opt.Journal, logging.NewDefaultLogger(lg))
		if err != nil {
			m.pool.Release()
			return nil, err
		}
	}
	return m, nil
}

// Initialize loads the comma separated module list left to right. An empty
// list is valid and loads nothing.
func (m *Manager) Initialize(hookList string) error {
	var names []string
	for _, name := range strings.Split(hookList, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return m.Load(names...)
}

// Load instantiates and registers the named modules in the given order. On
// failure the error is returned immediately but earlier successful loads in
// the same call are kept: the engines always compose whatever is currently
// registered.
func (m *Manager) Load(names ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		if _, ok := m.hooks[name]; ok {
			return errors.Wrapf(enum.ErrHookAlreadyLoaded, "hook module '%v'", name)
		}
		if !m.loader.Contains(name) {
			return errors.Wrapf(enum.ErrUnknownModule, "hook module '%v'", name)
		}
		h, err := m.loader.Create(name)
		if err != nil {
			return errors.Wrapf(enum.ErrModuleCreate, "hook module '%v': %v", name, err)
		}

		m.names = append(m.names, name)
		m.hooks[name] = h
		m.journal.Record(enum.HookLoaded, name, "", nil)
		m.lg.Info().Str("hook", name).Int("loaded", len(m.names)).Msg("loaded hook module")
	}
	return nil
}

// Unload removes the named hook. Other registered hooks keep their order.
func (m *Manager) Unload(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hooks[name]; !ok {
		return errors.Wrapf(enum.ErrHookNotLoaded, "hook module '%v'", name)
	}
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	delete(m.hooks, name)
	m.journal.Record(enum.HookUnloaded, name, "", nil)
	m.lg.Info().Str("hook", name).Int("loaded", len(m.names)).Msg("unloaded hook module")
	return nil
}

// HooksAvailable reports whether any hook module is registered.
func (m *Manager) HooksAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.names) > 0
}

// Close releases the fan-out pool and the journal. In-flight aggregations
// should be drained by the caller first.
func (m *Manager) Close() error {
	m.pool.Release()
	return m.journal.Close()
}

// snapshot copies the ordered hook list for use outside the mutex.
func (m *Manager) snapshot() ([]string, []types.Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(m.names))
	copy(names, m.names)
	hooks := make([]types.Hook, 0, len(names))
	for _, name := range names {
		hooks = append(hooks, m.hooks[name])
	}
	return names, hooks
}

// hookFailed records a runtime hook failure. Failures at synchronous call
// sites are operationally visible via logs and the journal only, never to the
// lifecycle caller.
func (m *Manager) hookFailed(name, site string, err error) {
	m.lg.Warn().Str("hook", name).Str("site", site).Err(err).Msg("hook invocation failed")
	m.journal.Record(enum.HookInvokeFailed, name, site, err)
}
