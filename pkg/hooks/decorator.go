package hooks

import (
	"github.com/hoist-run/hoist/pkg/types"
)

// Sequential decorator call sites. Each one takes the registry mutex for the
// whole traversal, threads a working copy through the hooks in registration
// order and returns the decorated field. Each hook observes the cumulative
// effect of the hooks before it, so the last hook returning a replacement
// determines the final value. A failing hook contributes "no change" and the
// chain continues.

const (
	siteLaunchTaskLabels    = "launch task label decorator"
	siteRunTaskLabels       = "run task label decorator"
	siteExecutorEnvironment = "executor environment decorator"
	siteTaskStatus          = "task status decorator"
	siteResources           = "resources decorator"
	siteAttributes          = "attributes decorator"
)

// DecorateLaunchTaskLabels runs the master-side label decorators for a task
// about to be launched and returns the final labels.
func (m *Manager) DecorateLaunchTaskLabels(task *types.TaskInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) types.Labels {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Decorate a mutable copy and fold each replacement back into it,
	// otherwise only the last hook returning labels would be effective.
	task = task.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateLaunchTaskLabels(task, framework, agent)
		if err != nil {
			m.hookFailed(name, siteLaunchTaskLabels, err)
			continue
		}
		if res != nil {
			task.Labels = res.Clone()
		}
	}
	return task.Labels
}

// DecorateRunTaskLabels runs the agent-side label decorators for a task about
// to be run and returns the final labels.
func (m *Manager) DecorateRunTaskLabels(task *types.TaskInfo, executor *types.ExecutorInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) types.Labels {
	m.mu.Lock()
	defer m.mu.Unlock()

	task = task.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateRunTaskLabels(task, executor, framework, agent)
		if err != nil {
			m.hookFailed(name, siteRunTaskLabels, err)
			continue
		}
		if res != nil {
			task.Labels = res.Clone()
		}
	}
	return task.Labels
}

// DecorateExecutorEnvironment runs the environment decorators for an executor
// about to be launched and returns the final command environment.
func (m *Manager) DecorateExecutorEnvironment(executor *types.ExecutorInfo) types.Environment {
	m.mu.Lock()
	defer m.mu.Unlock()

	executor = executor.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateExecutorEnvironment(executor)
		if err != nil {
			m.hookFailed(name, siteExecutorEnvironment, err)
			continue
		}
		if res != nil {
			executor.Command.Environment = res.Clone()
		}
	}
	return executor.Command.Environment
}

// DecorateTaskStatus runs the status decorators for a status update about to
// be forwarded and returns the decorated status. Labels and container status
// are applied independently, so a hook may replace one without the other.
func (m *Manager) DecorateTaskStatus(frameworkId string, status *types.TaskStatus) types.TaskStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	status = status.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateTaskStatus(frameworkId, status)
		if err != nil {
			m.hookFailed(name, siteTaskStatus, err)
			continue
		}
		if res == nil {
			continue
		}
		if res.Labels != nil {
			status.Labels = res.Labels.Clone()
		}
		if res.ContainerStatus != nil {
			status.ContainerStatus = res.ContainerStatus.Clone()
		}
	}
	return *status
}

// DecorateResources runs the resource decorators before an agent advertises
// its resources and returns the final resource set.
func (m *Manager) DecorateResources(agent *types.AgentInfo) types.Resources {
	m.mu.Lock()
	defer m.mu.Unlock()

	agent = agent.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateResources(agent)
		if err != nil {
			m.hookFailed(name, siteResources, err)
			continue
		}
		if res != nil {
			agent.Resources = res.Clone()
		}
	}
	return agent.Resources
}

// DecorateAttributes runs the attribute decorators before an agent advertises
// its attributes and returns the final attribute set.
func (m *Manager) DecorateAttributes(agent *types.AgentInfo) types.Attributes {
	m.mu.Lock()
	defer m.mu.Unlock()

	agent = agent.Clone()
	for _, name := range m.names {
		res, err := m.hooks[name].DecorateAttributes(agent)
		if err != nil {
			m.hookFailed(name, siteAttributes, err)
			continue
		}
		if res != nil {
			agent.Attributes = res.Clone()
		}
	}
	return agent.Attributes
}
