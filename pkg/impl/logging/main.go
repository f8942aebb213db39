package logging

import (
	"fmt"
	"os"

	"github.com/hoist-run/hoist/pkg/types"
	"github.com/rs/zerolog"
)

type defaultLogger struct {
	lg *zerolog.Logger
}

// NewDefaultLogger wraps a zerolog logger into a types.Logger. When lg is nil
// a timestamped stdout logger is created.
func NewDefaultLogger(lg *zerolog.Logger) types.Logger {
	if lg == nil {
		tmp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		return &defaultLogger{lg: &tmp}
	}
	return &defaultLogger{lg: lg}
}

func (d *defaultLogger) Log(lvl types.Level, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "(MISSING)")
	}

	event := d.lg.WithLevel(level(lvl))
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyvals[i])
		}
		event = event.Interface(key, keyvals[i+1])
	}
	event.Send()
}

func level(lvl types.Level) zerolog.Level {
	switch lvl {
	case types.LevelTrace:
		return zerolog.TraceLevel
	case types.LevelDebug:
		return zerolog.DebugLevel
	case types.LevelInfo:
		return zerolog.InfoLevel
	case types.LevelWarn:
		return zerolog.WarnLevel
	case types.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
