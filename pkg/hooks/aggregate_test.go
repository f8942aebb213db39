package hooks

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hoist-run/hoist/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLaunch() *types.DockerLaunch {
	return &types.DockerLaunch{
		Executor:         &types.ExecutorInfo{Uid: "executor-1"},
		ContainerName:    "container-1",
		SandboxDirectory: "/tmp/sandbox",
		MappedDirectory:  "/mnt/sandbox",
	}
}

func TestAggregateLastRegisteredWins(t *testing.T) {
	a, b := newTestHook(), newTestHook()
	a.dockerEnv = map[string]string{"K1": "a"}
	b.dockerEnv = map[string]string{"K1": "b", "K2": "c"}
	m := newTestManager(t, []string{"a", "b"}, map[string]*testHook{"a": a, "b": b})

	env, err := m.AggregateDockerEnvironment(testLaunch())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"K1": "b", "K2": "c"}, env)
}

func TestAggregateZeroHooks(t *testing.T) {
	m := newTestManager(t, nil, nil)

	env, err := m.AggregateDockerEnvironment(testLaunch())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, env)
}

func TestAggregateSkipsAbsentResults(t *testing.T) {
	a, b := newTestHook(), newTestHook()
	b.dockerEnv = map[string]string{"K": "v"}
	m := newTestManager(t, []string{"a", "b"}, map[string]*testHook{"a": a, "b": b})

	env, err := m.AggregateDockerEnvironment(testLaunch())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"K": "v"}, env)
}

func TestAggregateFailureFailsCall(t *testing.T) {
	a, b := newTestHook(), newTestHook()
	a.err = fmt.Errorf("remote call failed")
	b.dockerEnv = map[string]string{"K": "v"}
	m := newTestManager(t, []string{"a", "b"}, map[string]*testHook{"a": a, "b": b})

	env, err := m.AggregateDockerEnvironment(testLaunch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'a'")
	assert.Nil(t, env)

	// Every hook was still awaited despite the failure.
	assert.Equal(t, 1, b.callCount("docker"))
}

func TestAggregateRunsHooksConcurrently(t *testing.T) {
	// Each hook blocks until all have started; the join only completes if the
	// fan-out actually runs them concurrently.
	var started sync.WaitGroup
	started.Add(2)

	a, b := newTestHook(), newTestHook()
	for _, h := range []*testHook{a, b} {
		h.dockerStarted = started.Done
		h.dockerWait = started.Wait
	}
	a.dockerEnv = map[string]string{"A": "1"}
	b.dockerEnv = map[string]string{"B": "2"}
	m := newTestManager(t, []string{"a", "b"}, map[string]*testHook{"a": a, "b": b})

	env, err := m.AggregateDockerEnvironment(testLaunch())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, env)
}

func TestAggregateUsesSnapshotOfRegistry(t *testing.T) {
	// Unloading a hook mid-aggregation must neither block nor remove it from
	// the in-flight fan-out.
	started := make(chan struct{})
	release := make(chan struct{})

	a := newTestHook()
	a.dockerEnv = map[string]string{"A": "1"}
	a.dockerStarted = func() { close(started) }
	a.dockerWait = func() { <-release }
	m := newTestManager(t, []string{"a"}, map[string]*testHook{"a": a})

	done := make(chan error, 1)
	var env map[string]string
	go func() {
		var err error
		env, err = m.AggregateDockerEnvironment(testLaunch())
		done <- err
	}()

	// Unload completes while the hook is still blocked in the aggregation.
	<-started
	require.NoError(t, m.Unload("a"))
	assert.False(t, m.HooksAvailable())
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, map[string]string{"A": "1"}, env)
}
