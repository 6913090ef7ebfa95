package node

import "github.com/vkngwrapper/mork/mdb"

var (
	// ErrNonNode is returned when a refcount method is called on memory that is not an initialized node
	ErrNonNode = mdb.NewError(mdb.ResultNonNode, "not an initialized node")
	// ErrUsesUnderflow is returned when a strong reference is cut from a node that has none
	ErrUsesUnderflow = mdb.NewError(mdb.ResultUsesUnderflow, "strong reference count underflow")
	// ErrRefsUnderflow is returned when a reference is cut that would leave fewer total references
	// than strong references
	ErrRefsUnderflow = mdb.NewError(mdb.ResultRefsUnderflow, "reference count underflow")
	// ErrCountOverflow is returned when a reference is added to a node whose counters are saturated
	ErrCountOverflow = mdb.NewError(mdb.ResultCountOverflow, "reference count overflow")
)
