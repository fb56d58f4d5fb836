package embedding

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const loadTimeout = 30 * time.Second

// Lazy defers backend construction until the first caller needs it. The load
// runs exactly once per process: if it fails, the backend stays unavailable
// for the process lifetime and a restart is required to re-attempt it.
// Concurrent callers after a successful load share the same instance without
// locking; the loaded backend is read-only.
type Lazy struct {
	load   func(ctx context.Context) (Backend, error)
	logger *zap.Logger

	once    sync.Once
	backend Backend
}

// NewLazy wraps a backend constructor. A nil load function yields a
// permanently unavailable backend.
func NewLazy(load func(ctx context.Context) (Backend, error), logger *zap.Logger) *Lazy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lazy{load: load, logger: logger}
}

func (l *Lazy) init() {
	l.once.Do(func() {
		if l.load == nil {
			l.logger.Info("embedding backend not configured")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		backend, err := l.load(ctx)
		if err != nil {
			l.logger.Warn("embedding backend failed to load, semantic scoring disabled", zap.Error(err))
			return
		}
		l.backend = backend
		l.logger.Info("embedding backend loaded")
	})
}

func (l *Lazy) Available() bool {
	l.init()
	return l.backend != nil && l.backend.Available()
}

func (l *Lazy) Embed(ctx context.Context, text string) ([]float32, error) {
	l.init()
	if l.backend == nil {
		return nil, ErrUnavailable
	}
	return l.backend.Embed(ctx, text)
}
