package env

import "github.com/vkngwrapper/mork/mdb"

var (
	// ErrNilEnv is returned when a nil environment is passed across the external boundary
	ErrNilEnv = mdb.NewError(mdb.ResultNilEnv, "environment is nil")
	// ErrBadEnv is returned when an environment passed across the external boundary was not
	// created by this package, or its memory no longer looks like an environment
	ErrBadEnv = mdb.NewError(mdb.ResultBadEnv, "environment is not valid")
	// ErrEnvDown is returned when an environment passed across the external boundary is closed
	ErrEnvDown = mdb.NewError(mdb.ResultEnvDown, "environment is not open")
)
