package prism

import "github.com/solarlune/prism/logging"

var logger logging.Logger = logging.NewDefaultLogger("prism", false)

// SetLogger replaces the Logger used for warnings raised while configuring Materials and loading assets.
// Passing nil silences logging.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNopLogger()
	}
	logger = l
}

// Log returns the Logger currently in use.
func Log() logging.Logger {
	return logger
}
