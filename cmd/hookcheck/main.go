package main

import (
	"os"

	"github.com/hoist-run/hoist/pkg/config"
	"github.com/hoist-run/hoist/pkg/hooks"
	"github.com/hoist-run/hoist/pkg/impl/modules"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// hookcheck loads the hook modules configured via HOIST_HOOK_MODULES and runs
// a dry-run decoration against a synthetic task so operators can verify a
// module list before rolling it out.

var task = types.TaskInfo{
	Uid:     "hookcheck-task-1",
	Name:    "hookcheck",
	AgentId: "agent-1",
	Labels:  types.Labels{{Key: "origin", Value: "hookcheck"}},
}

var framework = types.FrameworkInfo{
	Uid:  "hookcheck-framework",
	Name: "hookcheck",
	User: "nobody",
}

var agent = types.AgentInfo{
	Uid:      "agent-1",
	Hostname: "localhost",
	Resources: types.Resources{
		{Name: "cpus", Value: 4},
		{Name: "mem", Value: 8192},
	},
}

func main() {
	conf := config.DefaultFromEnv()
	zerolog.SetGlobalLevel(conf.Log.GetLevel())
	lg := zerolog.New(os.Stdout).With().Timestamp().Logger()

	catalog := modules.NewCatalog()
	if err := catalog.Register(modules.LoggingModuleName, func() (types.Hook, error) {
		return modules.NewLoggingHook(&lg), nil
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to register builtin modules")
	}

	opt := &hooks.Options{PoolSize: conf.Hooks.PoolSize, Journal: conf.Journal}
	mgr, err := hooks.New(opt, catalog, &lg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create hook manager")
	}
	defer mgr.Close()

	if err = mgr.Initialize(conf.Hooks.Modules); err != nil {
		log.Fatal().Err(err).Str("modules", conf.Hooks.Modules).Msg("failed to load hook modules")
	}
	if !mgr.HooksAvailable() {
		lg.Warn().Msg("no hook modules configured, decorations will be no-ops")
	}

	labels := mgr.DecorateLaunchTaskLabels(&task, &framework, &agent)
	lg.Info().Interface("labels", labels).Msg("launch task labels after decoration")

	resources := mgr.DecorateResources(&agent)
	lg.Info().Interface("resources", resources).Msg("agent resources after decoration")

	launch := &types.DockerLaunch{
		Task:             &task,
		Executor:         &types.ExecutorInfo{Uid: "hookcheck-executor", FrameworkId: framework.Uid},
		ContainerName:    "hookcheck",
		SandboxDirectory: os.TempDir(),
		MappedDirectory:  "/mnt/sandbox",
	}
	env, err := mgr.AggregateDockerEnvironment(launch)
	if err != nil {
		log.Fatal().Err(err).Msg("docker environment aggregation failed")
	}
	lg.Info().Interface("env", env).Msg("docker launch environment after aggregation")
}
