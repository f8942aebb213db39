package hooks

import (
	"github.com/hoist-run/hoist/pkg/types"
)

// Notification call sites. No return value and no chaining: hooks are informed
// in registration order, a failing hook is logged and the dispatch continues.
// The mutex is held so the set being iterated cannot change mid-dispatch.

const (
	siteAgentLost       = "agent lost"
	sitePreLaunchDocker = "pre launch docker"
	sitePostFetch       = "post fetch"
	siteRemoveExecutor  = "remove executor"
)

// NotifyAgentLost informs all hooks that an agent was marked lost.
func (m *Manager) NotifyAgentLost(agent *types.AgentInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.names {
		if err := m.hooks[name].OnAgentLost(agent); err != nil {
			m.hookFailed(name, siteAgentLost, err)
		}
	}
}

// NotifyPreLaunchDocker informs all hooks that a docker container is about to
// be launched.
func (m *Manager) NotifyPreLaunchDocker(launch *types.DockerLaunch) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.names {
		if err := m.hooks[name].OnPreLaunchDocker(launch); err != nil {
			m.hookFailed(name, sitePreLaunchDocker, err)
		}
	}
}

// NotifyPostFetch informs all hooks that the fetcher finished populating a
// container's sandbox.
func (m *Manager) NotifyPostFetch(containerId string, sandboxDirectory string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.names {
		if err := m.hooks[name].OnPostFetch(containerId, sandboxDirectory); err != nil {
			m.hookFailed(name, sitePostFetch, err)
		}
	}
}

// NotifyRemoveExecutor informs all hooks that an executor is being torn down.
func (m *Manager) NotifyRemoveExecutor(framework *types.FrameworkInfo, executor *types.ExecutorInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.names {
		if err := m.hooks[name].OnRemoveExecutor(framework, executor); err != nil {
			m.hookFailed(name, siteRemoveExecutor, err)
		}
	}
}
