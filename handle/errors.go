package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/mdb"
)

var (
	ErrBadTag          = mdb.NewError(mdb.ResultBadTag, "memory does not look like a valid handle")
	ErrBadMagic        = mdb.NewError(mdb.ResultBadMagic, "handle is not of the expected kind")
	ErrHandleDown      = mdb.NewError(mdb.ResultHandleDown, "handle is not in a state permitting this access")
	ErrNilFactory      = mdb.NewError(mdb.ResultNilFactory, "environment has no factory")
	ErrNilHandleObject = mdb.NewError(mdb.ResultNilHandleObject, "handle does not wrap an object")
	ErrNonNodeObject   = mdb.NewError(mdb.ResultNonNodeObject, "handle wraps something that is not a node")
	ErrNonOpenObject   = mdb.NewError(mdb.ResultNonOpenObject, "wrapped object is not in a state permitting this access")
	ErrHandleInUse     = mdb.NewError(mdb.ResultHandleInUse, "handle still has outstanding references")

	// ErrUseAfterClose is raised as an assertion failure, never returned, when a handle is
	// destroyed before it was closed
	ErrUseAfterClose = errors.New("handle destroyed before it was closed")
)
