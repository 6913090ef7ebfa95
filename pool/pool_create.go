package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/internal/utils"
	"golang.org/x/exp/slog"
)

// CreateOptions contains optional settings when creating a pool
type CreateOptions struct {
	// Name identifies the pool in logs and statistics
	Name string
	// UseMutex guards the pool's bookkeeping with a mutex. The handle layer assumes a single
	// logical thread per environment, so pools are unsynchronized unless this is set.
	UseMutex bool
	// InitialCapacity is the number of frame slots to reserve up front
	InitialCapacity int
}

// New creates a new Pool of frames carrying payloads of type T
//
// logger - The logger that pool diagnostics are written to
//
// options - Optional parameters: it is valid to leave all the fields blank
func New[T any](logger *slog.Logger, options CreateOptions) (*Pool[T], error) {
	if logger == nil {
		return nil, errors.New("attempted to create a pool with a nil logger")
	}
	if options.InitialCapacity < 0 {
		return nil, errors.Newf("attempted to create a pool with negative initial capacity %d", options.InitialCapacity)
	}

	name := options.Name
	if name == "" {
		name = "pool"
	}

	return &Pool[T]{
		logger: logger.With(slog.String("pool", name)),
		name:   name,
		mutex:  utils.OptionalRWMutex{UseMutex: options.UseMutex},
		slots:  make([]*Frame[T], 0, options.InitialCapacity),
	}, nil
}
