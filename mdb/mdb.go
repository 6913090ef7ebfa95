// Package mdb declares the boundary that the handle layer exposes to API consumers. Consumers
// only ever see these interfaces: environments and factories are opaque, and every object method
// reports a Result alongside its error.
package mdb

//go:generate mockgen -destination=mocks/mdb.go -package=mock_mdb github.com/vkngwrapper/mork/mdb Env,Factory

// Env is the externally-typed environment passed into every Object method. The only
// implementation accepted by the handle layer is *env.Env; anything else is rejected when the
// handle adapts it into its internal environment.
type Env interface {
	ErrorCount() int
	WarningCount() int
	ClearErrors()
}

// Factory is the owning factory of a family of objects. GetFactory acquires a strong reference
// to the factory on the caller's behalf, which the caller must cut when finished with it.
type Factory interface {
	AddStrongRef(mev Env) (Result, error)
	CutStrongRef(mev Env) (Result, error)
}

// Object is the fixed method set every handle exposes to consumers, regardless of the kind
// of internal object it wraps
type Object interface {
	IsFrozen(mev Env) (bool, Result, error)
	GetFactory(mev Env) (Factory, Result, error)
	GetWeakRefCount(mev Env) (int, Result, error)
	GetStrongRefCount(mev Env) (int, Result, error)

	AddWeakRef(mev Env) (Result, error)
	AddStrongRef(mev Env) (Result, error)
	CutWeakRef(mev Env) (Result, error)
	CutStrongRef(mev Env) (Result, error)

	CloseObject(mev Env) (Result, error)
	IsOpen(mev Env) (bool, Result, error)
}
