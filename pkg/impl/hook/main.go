package hook

import (
	"github.com/hoist-run/hoist/pkg/types"
)

// Default is the global no-op hook
var Default = new(Base)

// Base implements every hook call site as a no-op. Concrete modules embed it
// and override only the call sites they care about.
type Base struct {
}

func (b *Base) DecorateLaunchTaskLabels(task *types.TaskInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) (*types.Labels, error) {
	return nil, nil
}

func (b *Base) OnAgentLost(agent *types.AgentInfo) error {
	return nil
}

func (b *Base) DecorateRunTaskLabels(task *types.TaskInfo, executor *types.ExecutorInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) (*types.Labels, error) {
	return nil, nil
}

func (b *Base) DecorateExecutorEnvironment(executor *types.ExecutorInfo) (*types.Environment, error) {
	return nil, nil
}

func (b *Base) DecorateDockerEnvironment(launch *types.DockerLaunch) (map[string]string, error) {
	return nil, nil
}

func (b *Base) OnPreLaunchDocker(launch *types.DockerLaunch) error {
	return nil
}

func (b *Base) OnPostFetch(containerId string, sandboxDirectory string) error {
	return nil
}

func (b *Base) OnRemoveExecutor(framework *types.FrameworkInfo, executor *types.ExecutorInfo) error {
	return nil
}

func (b *Base) DecorateTaskStatus(frameworkId string, status *types.TaskStatus) (*types.TaskStatusDecoration, error) {
	return nil, nil
}

func (b *Base) DecorateResources(agent *types.AgentInfo) (*types.Resources, error) {
	return nil, nil
}

func (b *Base) DecorateAttributes(agent *types.AgentInfo) (*types.Attributes, error) {
	return nil, nil
}
