package tint

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used for diagnostics. The library is silent
// until a logger is installed.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the installed diagnostics logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}
