package enum

// HookEvent types recorded in the hook journal.
type HookEvent string

const (
	HookLoaded       HookEvent = "HookLoaded"
	HookUnloaded     HookEvent = "HookUnloaded"
	HookInvokeFailed HookEvent = "HookInvokeFailed"
)
