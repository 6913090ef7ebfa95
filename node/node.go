// Package node provides the reference counted lifecycle base shared by handles, environments,
// and the objects handles wrap.
package node

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Closer is implemented by the owner of a Node. CloseNode is the generic close hook: it runs
// when the last strong reference is cut, or when anyone closes the node through its base.
type Closer interface {
	CloseNode()
}

// Releaser may be implemented alongside Closer by owners that want to reclaim their storage
// once the last reference of any kind has been cut
type Releaser interface {
	ReleaseNode()
}

// Node carries the access state, usage, mutability, load flag, and the two reference counters
// of a refcounted structure. It is meant to be embedded by value.
type Node struct {
	base    Base
	derived Derived
	access  Access
	usage   Usage
	mutable Able
	load    Load

	// uses counts strong references, refs counts strong and weak references together
	uses uint32
	refs uint32

	owner Closer
}

// Init prepares the node for use. A freshly initialized node is open, mutable, clean, and
// carries a single strong reference that belongs to its creator.
func (n *Node) Init(derived Derived, usage Usage, owner Closer) {
	n.base = BaseNode
	n.derived = derived
	n.access = AccessOpen
	n.usage = usage
	n.mutable = AbleEnabled
	n.load = LoadClean
	n.uses = 1
	n.refs = 1
	n.owner = owner
}

// AsNode allows any structure embedding a Node to be treated as one
func (n *Node) AsNode() *Node { return n }

func (n *Node) IsNode() bool      { return n.base == BaseNode }
func (n *Node) Derived() Derived  { return n.derived }
func (n *Node) Access() Access    { return n.access }
func (n *Node) Usage() Usage      { return n.usage }
func (n *Node) IsOpen() bool      { return n.access == AccessOpen }
func (n *Node) IsShutting() bool  { return n.access == AccessClosing || n.access == AccessShut }
func (n *Node) IsDead() bool      { return n.access == AccessDead }
func (n *Node) IsMutable() bool   { return n.mutable == AbleEnabled }
func (n *Node) IsFrozen() bool    { return n.mutable == AbleDisabled }
func (n *Node) IsAsleep() bool    { return n.mutable == AbleAsleep }
func (n *Node) IsDirty() bool     { return n.load == LoadDirty }
func (n *Node) Uses() int         { return int(n.uses) }
func (n *Node) Refs() int         { return int(n.refs) }
func (n *Node) WeakRefsOnly() int { return int(n.refs - n.uses) }
func (n *Node) SetMutable()       { n.mutable = AbleEnabled }
func (n *Node) SetFrozen()        { n.mutable = AbleDisabled }
func (n *Node) SetAsleep()        { n.mutable = AbleAsleep }
func (n *Node) SetDirty()         { n.load = LoadDirty }
func (n *Node) SetClean()         { n.load = LoadClean }
func (n *Node) MarkClosing()      { n.access = AccessClosing }
func (n *Node) MarkShut()         { n.access = AccessShut }
func (n *Node) MarkDead()         { n.access = AccessDead }
func (n *Node) IsDerived(d Derived) bool {
	return n.IsNode() && n.derived == d
}

// CloseNode runs the owner's close hook. Nodes without an owner simply become shut.
func (n *Node) CloseNode() {
	if !n.IsNode() {
		return
	}

	if n.owner != nil {
		n.owner.CloseNode()
		return
	}

	if n.IsOpen() {
		n.MarkClosing()
		n.MarkShut()
	}
}

// AddStrongRef adds a strong reference and returns the new strong count
func (n *Node) AddStrongRef() (int, error) {
	if !n.IsNode() {
		return 0, ErrNonNode
	}
	if n.uses == math.MaxUint32 || n.refs == math.MaxUint32 {
		return int(n.uses), ErrCountOverflow
	}

	n.uses++
	n.refs++
	return int(n.uses), nil
}

// AddWeakRef adds a weak reference and returns the new total reference count
func (n *Node) AddWeakRef() (int, error) {
	if !n.IsNode() {
		return 0, ErrNonNode
	}
	if n.refs == math.MaxUint32 {
		return int(n.refs), ErrCountOverflow
	}

	n.refs++
	return int(n.refs), nil
}

// CutStrongRef removes a strong reference and returns the remaining total reference count.
// Cutting the last strong reference closes the node; cutting the last reference of any kind
// kills it and lets the owner reclaim it. The counters are left untouched on error.
func (n *Node) CutStrongRef() (int, error) {
	if !n.IsNode() {
		return 0, ErrNonNode
	}
	if n.uses == 0 {
		return int(n.refs), ErrUsesUnderflow
	}
	if n.refs == 0 {
		return 0, ErrRefsUnderflow
	}

	n.uses--
	n.refs--
	remaining := int(n.refs)

	if n.uses == 0 {
		n.CloseNode()
	}
	// closing may already have released the node, in which case it is no longer a node
	if remaining == 0 {
		n.release()
	}

	return remaining, nil
}

// CutWeakRef removes a weak reference and returns the remaining total reference count
func (n *Node) CutWeakRef() (int, error) {
	if !n.IsNode() {
		return 0, ErrNonNode
	}
	if n.refs <= n.uses {
		return int(n.refs), errors.Wrapf(ErrRefsUnderflow, "node has %d refs and %d uses", n.refs, n.uses)
	}

	n.refs--
	remaining := int(n.refs)
	if remaining == 0 {
		n.release()
	}

	return remaining, nil
}

func (n *Node) release() {
	if !n.IsNode() || n.IsDead() {
		return
	}

	n.MarkDead()
	if releaser, ok := n.owner.(Releaser); ok {
		releaser.ReleaseNode()
	}
}
