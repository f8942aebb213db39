package hooks

import (
	"sync"

	"github.com/hoist-run/hoist/pkg/enum"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/pkg/errors"
	"github.com/satori/uuid"
)

const siteDockerEnvironment = "docker environment decorator"

// AggregateDockerEnvironment fans the docker pre-launch environment decoration
// out to every registered hook concurrently and merges the contributed
// variables once all hooks have replied. Hooks at this call site may perform
// long-latency work, so the mutex is only held while copying the hook list:
// the aggregation uses the hook set as of its start, a concurrent Unload
// neither interrupts hooks already in flight nor stalls on them.
//
// Conflicting variable names resolve deterministically: the hook later in
// registration order takes priority, mirroring the sequential engines'
// last-wins policy. Unlike those engines a hook failure here fails the whole
// call, because the merged environment models one launch request and a silent
// partial merge would hand the launcher an incomplete environment. All hooks
// are awaited even when one fails early.
func (m *Manager) AggregateDockerEnvironment(launch *types.DockerLaunch) (map[string]string, error) {
	names, hooks := m.snapshot()

	id := uuid.NewV4().String()
	m.lg.Debug().Str("aggregationId", id).Int("hooks", len(hooks)).
		Str("container", launch.ContainerName).Msg("aggregating docker environment")

	results := make([]map[string]string, len(hooks))
	errs := make([]error, len(hooks))
	var wg sync.WaitGroup
	for i := range hooks {
		i := i
		wg.Add(1)
		err := m.pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = hooks[i].DecorateDockerEnvironment(launch)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	var failed error
	for i, err := range errs {
		if err == nil {
			continue
		}
		m.lg.Warn().Str("hook", names[i]).Str("aggregationId", id).Err(err).
			Msg("docker environment decorator hook failed")
		m.journal.Record(enum.HookInvokeFailed, names[i], siteDockerEnvironment, err)
		if failed == nil {
			failed = errors.Wrapf(err, "docker environment decorator hook '%v'", names[i])
		}
	}
	if failed != nil {
		return nil, failed
	}

	env := make(map[string]string)
	for _, res := range results {
		for name, value := range res {
			env[name] = value
		}
	}
	return env, nil
}
