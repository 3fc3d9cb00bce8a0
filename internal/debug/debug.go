package debug

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	root zerolog.Logger
)

// Logger returns a logger tagged with the given component name. The first
// call decides the backend for the whole process: a file in append mode when
// TINT_DEBUG names a path, a no-op logger otherwise. Open failures fall back
// to the no-op logger rather than surfacing an error.
func Logger(component string) zerolog.Logger {
	once.Do(initRoot)
	return root.With().Str("component", component).Logger()
}

func initRoot() {
	path := os.Getenv("TINT_DEBUG")
	if path == "" {
		root = zerolog.Nop()
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		root = zerolog.Nop()
		return
	}

	root = zerolog.New(f).With().Timestamp().Logger()
}
