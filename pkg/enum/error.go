package enum

import "fmt"

var (
	ErrHookAlreadyLoaded = fmt.Errorf("hook module already loaded")
	ErrUnknownModule     = fmt.Errorf("no such hook module available")
	ErrModuleCreate      = fmt.Errorf("failed to instantiate hook module")
	ErrHookNotLoaded     = fmt.Errorf("hook module not loaded")
)
