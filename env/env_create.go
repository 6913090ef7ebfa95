package env

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/internal/utils"
	"github.com/vkngwrapper/mork/mdb"
	"github.com/vkngwrapper/mork/node"
	"golang.org/x/exp/slog"
)

// CreateOptions contains optional settings when creating an environment
type CreateOptions struct {
	// Factory is the factory reported as the owner of objects used through this environment.
	// It may be left nil, in which case GetFactory calls fail with NilFactory.
	Factory mdb.Factory
	// UseMutex guards the environment's error counters with a mutex
	UseMutex bool
}

// New creates a new Env
//
// logger - The logger that errors reported to the environment are written to
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, options CreateOptions) (*Env, error) {
	if logger == nil {
		return nil, errors.New("attempted to create an environment with a nil logger")
	}

	ev := &Env{
		tag:     Tag,
		logger:  logger,
		factory: options.Factory,
		mutex:   utils.OptionalMutex{UseMutex: options.UseMutex},
	}
	ev.Node.Init(node.DerivedEnv, node.UsageHeap, ev)

	return ev, nil
}
