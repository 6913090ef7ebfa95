// Package env provides the internal environment threaded through every handle operation. An
// environment carries the logger, the owning factory, and the error channel that failed
// operations are reported to.
package env

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/internal/utils"
	"github.com/vkngwrapper/mork/mdb"
	"github.com/vkngwrapper/mork/node"
	"golang.org/x/exp/slog"
)

// Tag is the sentinel carried by every live environment
const Tag uint32 = 0x65526E56 // ascii 'eRnV'

type Env struct {
	node.Node

	tag     uint32
	logger  *slog.Logger
	factory mdb.Factory

	mutex        utils.OptionalMutex
	errorCount   int
	warningCount int
	lastError    error
}

var _ mdb.Env = &Env{}

// FromMdbEnv adapts an externally-typed environment into the internal one, verifying that it
// really is a live environment created by this package
func FromMdbEnv(mev mdb.Env) (*Env, error) {
	if mev == nil {
		return nil, ErrNilEnv
	}

	ev, ok := mev.(*Env)
	if !ok {
		return nil, errors.Wrapf(ErrBadEnv, "environment has foreign type %T", mev)
	}
	if ev == nil {
		return nil, ErrNilEnv
	}
	if ev.tag != Tag || !ev.IsDerived(node.DerivedEnv) {
		return nil, ErrBadEnv
	}
	if !ev.Node.IsOpen() {
		return nil, errors.Wrapf(ErrEnvDown, "environment is %s", ev.Access())
	}

	return ev, nil
}

func (e *Env) Logger() *slog.Logger { return e.logger }
func (e *Env) Factory() mdb.Factory { return e.factory }

// Report records an error on the environment's error channel. Operations that report an error
// also return it, so reporting is for diagnostics only.
func (e *Env) Report(err error) {
	if err == nil {
		return
	}

	e.mutex.Lock()
	e.errorCount++
	e.lastError = err
	e.mutex.Unlock()

	e.logger.Debug("Env::Report", slog.Any("error", err), slog.String("result", mdb.ResultFromError(err).String()))
}

// Warn records a warning on the environment's error channel
func (e *Env) Warn(err error) {
	if err == nil {
		return
	}

	e.mutex.Lock()
	e.warningCount++
	e.mutex.Unlock()

	e.logger.Debug("Env::Warn", slog.Any("error", err))
}

func (e *Env) ErrorCount() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.errorCount
}

func (e *Env) WarningCount() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.warningCount
}

// LastError returns the most recent error reported since the last ClearErrors
func (e *Env) LastError() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.lastError
}

// Good returns true if no errors have been reported since the last ClearErrors
func (e *Env) Good() bool {
	return e.ErrorCount() == 0
}

func (e *Env) ClearErrors() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.errorCount = 0
	e.warningCount = 0
	e.lastError = nil
}

// CloseNode is the generic close hook for environments
func (e *Env) CloseNode() {
	e.CloseEnv()
}

// CloseEnv shuts the environment. Handles will no longer accept it afterwards.
func (e *Env) CloseEnv() {
	if !e.IsNode() || !e.Node.IsOpen() {
		return
	}

	e.logger.Debug("Env::CloseEnv")

	e.MarkClosing()
	e.factory = nil
	e.MarkShut()
}
