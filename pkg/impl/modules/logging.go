package modules

import (
	"github.com/hoist-run/hoist/pkg/impl/hook"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/rs/zerolog"
)

// LoggingModuleName is the catalog name of the builtin logging hook.
const LoggingModuleName = "logging"

// loggingHook logs every call site it observes and never changes anything.
// Useful as a first hook when bringing up a new cluster, and in tests.
type loggingHook struct {
	hook.Base
	lg *zerolog.Logger
}

func NewLoggingHook(lg *zerolog.Logger) types.Hook {
	return &loggingHook{lg: lg}
}

func (h *loggingHook) DecorateLaunchTaskLabels(task *types.TaskInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) (*types.Labels, error) {
	h.lg.Info().Str("taskUid", task.Uid).Str("frameworkUid", framework.Uid).Str("agentUid", agent.Uid).
		Msg("launching task")
	return nil, nil
}

func (h *loggingHook) OnAgentLost(agent *types.AgentInfo) error {
	h.lg.Info().Str("agentUid", agent.Uid).Str("hostname", agent.Hostname).Msg("agent lost")
	return nil
}

func (h *loggingHook) DecorateRunTaskLabels(task *types.TaskInfo, executor *types.ExecutorInfo, framework *types.FrameworkInfo, agent *types.AgentInfo) (*types.Labels, error) {
	h.lg.Info().Str("taskUid", task.Uid).Str("executorUid", executor.Uid).Msg("running task")
	return nil, nil
}

func (h *loggingHook) OnPreLaunchDocker(launch *types.DockerLaunch) error {
	h.lg.Info().Str("container", launch.ContainerName).Str("sandbox", launch.SandboxDirectory).
		Msg("launching docker container")
	return nil
}

func (h *loggingHook) OnPostFetch(containerId string, sandboxDirectory string) error {
	h.lg.Info().Str("containerId", containerId).Str("sandbox", sandboxDirectory).Msg("fetched container sandbox")
	return nil
}

func (h *loggingHook) OnRemoveExecutor(framework *types.FrameworkInfo, executor *types.ExecutorInfo) error {
	h.lg.Info().Str("frameworkUid", framework.Uid).Str("executorUid", executor.Uid).Msg("removing executor")
	return nil
}

func (h *loggingHook) DecorateTaskStatus(frameworkId string, status *types.TaskStatus) (*types.TaskStatusDecoration, error) {
	h.lg.Info().Str("frameworkId", frameworkId).Str("taskUid", status.TaskUid).Str("state", status.State).
		Msg("task status update")
	return nil, nil
}
