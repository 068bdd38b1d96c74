package malloc

import (
	"sync/atomic"

	golog "github.com/bnclabs/golog"
)

var logok = int64(0)

// LogComponents enables logging. By default logging is disabled; callers
// that want log output for allocator internals call this with one or more
// of "heap", "alloc", "free", "coalesce", or "all".
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "heap", "alloc", "free", "coalesce", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

// SetLogger lets a host application supply its own golog.Logger instead of
// the package default. Passing nil restores golog's default logger.
func SetLogger(logger golog.Logger) {
	if logger != nil {
		golog.SetLogger(logger, nil)
		return
	}
	golog.SetLogger(nil, map[string]interface{}{"log.level": "info"})
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		golog.Debugf(format, v...)
	}
}

func tracef(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		golog.Tracef(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		golog.Warnf(format, v...)
	}
}
