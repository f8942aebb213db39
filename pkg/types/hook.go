package types

// Hook is implemented by pluggable modules to inject behavior at fixed points
// in the task/executor lifecycle. Concrete modules should embed hook.Base and
// override only the call sites they care about; every Base method is a no-op.
//
// Decorator methods return an optional replacement value: nil means "no
// change", a non-nil result replaces the corresponding field of the value
// being decorated. A returned error is logged with the module's name and does
// not abort the remaining hooks, except for DecorateDockerEnvironment whose
// failure fails the whole aggregation.
type Hook interface {
	// DecorateLaunchTaskLabels is invoked on the master right before a task
	// is launched. A non-nil result replaces the task's labels.
	DecorateLaunchTaskLabels(task *TaskInfo, framework *FrameworkInfo, agent *AgentInfo) (*Labels, error)

	// OnAgentLost is invoked on the master when an agent is marked lost.
	OnAgentLost(agent *AgentInfo) error

	// DecorateRunTaskLabels is invoked on the agent right before a task is
	// run. A non-nil result replaces the task's labels.
	DecorateRunTaskLabels(task *TaskInfo, executor *ExecutorInfo, framework *FrameworkInfo, agent *AgentInfo) (*Labels, error)

	// DecorateExecutorEnvironment is invoked on the agent before an executor
	// is launched. A non-nil result replaces the executor command's
	// environment.
	DecorateExecutorEnvironment(executor *ExecutorInfo) (*Environment, error)

	// DecorateDockerEnvironment is invoked concurrently with other modules
	// before a docker container is launched. The returned mapping contributes
	// environment variables to the merged launch environment; nil contributes
	// nothing. Unlike the other call sites an error here fails the
	// aggregation.
	DecorateDockerEnvironment(launch *DockerLaunch) (map[string]string, error)

	// OnPreLaunchDocker is invoked on the agent right before a docker
	// container is launched.
	OnPreLaunchDocker(launch *DockerLaunch) error

	// OnPostFetch is invoked on the agent after the fetcher has populated a
	// container's sandbox directory.
	OnPostFetch(containerId string, sandboxDirectory string) error

	// OnRemoveExecutor is invoked on the agent when an executor is being
	// torn down.
	OnRemoveExecutor(framework *FrameworkInfo, executor *ExecutorInfo) error

	// DecorateTaskStatus is invoked on the agent for every status update
	// before it is forwarded. Labels and ContainerStatus of the decoration
	// are applied independently, so a module may set one without touching
	// the other.
	DecorateTaskStatus(frameworkId string, status *TaskStatus) (*TaskStatusDecoration, error)

	// DecorateResources is invoked on the agent before its resources are
	// advertised. A non-nil result replaces the agent's resources.
	DecorateResources(agent *AgentInfo) (*Resources, error)

	// DecorateAttributes is invoked on the agent before its attributes are
	// advertised. A non-nil result replaces the agent's attributes.
	DecorateAttributes(agent *AgentInfo) (*Attributes, error)
}
