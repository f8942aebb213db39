package types

// Lifecycle snapshot value objects passed into hooks. The wire schemas are
// owned by the orchestrator core; these are their in-process forms. Engines
// decorate a Clone of the caller's value, never the original.

type Label struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Labels []Label

func (l Labels) Clone() Labels {
	if l == nil {
		return nil
	}
	c := make(Labels, len(l))
	copy(c, l)
	return c
}

// Variable is a single environment variable. Environment keeps the ordered
// list form so duplicated names survive decoration untouched.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Environment []Variable

func (e Environment) Clone() Environment {
	if e == nil {
		return nil
	}
	c := make(Environment, len(e))
	copy(c, e)
	return c
}

type Resource struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Role  string  `json:"role,omitempty"`
}

type Resources []Resource

func (r Resources) Clone() Resources {
	if r == nil {
		return nil
	}
	c := make(Resources, len(r))
	copy(c, r)
	return c
}

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Attributes []Attribute

func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	copy(c, a)
	return c
}

type TaskInfo struct {
	Uid     string `json:"uid"`
	Name    string `json:"name"`
	AgentId string `json:"agentId"`
	Labels  Labels `json:"labels"`
}

func (t *TaskInfo) Clone() *TaskInfo {
	if t == nil {
		return nil
	}
	c := *t
	c.Labels = t.Labels.Clone()
	return &c
}

type CommandInfo struct {
	Value       string      `json:"value"`
	Environment Environment `json:"environment"`
}

type ExecutorInfo struct {
	Uid         string      `json:"uid"`
	FrameworkId string      `json:"frameworkId"`
	Command     CommandInfo `json:"command"`
}

func (e *ExecutorInfo) Clone() *ExecutorInfo {
	if e == nil {
		return nil
	}
	c := *e
	c.Command.Environment = e.Command.Environment.Clone()
	return &c
}

type FrameworkInfo struct {
	Uid  string `json:"uid"`
	Name string `json:"name"`
	User string `json:"user"`
	Role string `json:"role,omitempty"`
}

type AgentInfo struct {
	Uid        string     `json:"uid"`
	Hostname   string     `json:"hostname"`
	Resources  Resources  `json:"resources"`
	Attributes Attributes `json:"attributes"`
}

func (a *AgentInfo) Clone() *AgentInfo {
	if a == nil {
		return nil
	}
	c := *a
	c.Resources = a.Resources.Clone()
	c.Attributes = a.Attributes.Clone()
	return &c
}

type ContainerStatus struct {
	ContainerId string   `json:"containerId"`
	IPAddresses []string `json:"ipAddresses,omitempty"`
}

func (s *ContainerStatus) Clone() *ContainerStatus {
	if s == nil {
		return nil
	}
	c := *s
	c.IPAddresses = append([]string(nil), s.IPAddresses...)
	return &c
}

type TaskStatus struct {
	TaskUid         string           `json:"taskUid"`
	State           string           `json:"state"`
	Message         string           `json:"message,omitempty"`
	Labels          Labels           `json:"labels"`
	ContainerStatus *ContainerStatus `json:"containerStatus,omitempty"`
}

func (s *TaskStatus) Clone() *TaskStatus {
	if s == nil {
		return nil
	}
	c := *s
	c.Labels = s.Labels.Clone()
	c.ContainerStatus = s.ContainerStatus.Clone()
	return &c
}

// TaskStatusDecoration carries the fields a hook may replace on a status
// update. Nil fields leave the status untouched.
type TaskStatusDecoration struct {
	Labels          *Labels
	ContainerStatus *ContainerStatus
}

// DockerLaunch describes an imminent docker container launch. Task is nil for
// executors launched without a task.
type DockerLaunch struct {
	Task             *TaskInfo         `json:"task,omitempty"`
	Executor         *ExecutorInfo     `json:"executor"`
	ContainerName    string            `json:"containerName"`
	SandboxDirectory string            `json:"sandboxDirectory"`
	MappedDirectory  string            `json:"mappedDirectory"`
	Resources        Resources         `json:"resources,omitempty"`
	Env              map[string]string `json:"env,omitempty"`
}
