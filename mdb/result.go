package mdb

import (
	"github.com/cockroachdb/errors"
)

// Result is the standardized status code returned from every Object method
type Result int32

const (
	ResultSuccess Result = iota
	ResultUnknown
	ResultNilEnv
	ResultBadEnv
	ResultEnvDown
	ResultBadTag
	ResultBadMagic
	ResultHandleDown
	ResultNilFactory
	ResultNilHandleObject
	ResultNonNodeObject
	ResultNonOpenObject
	ResultNonNode
	ResultUsesUnderflow
	ResultRefsUnderflow
	ResultCountOverflow
	ResultHandleInUse
)

var resultMapping = map[Result]string{
	ResultSuccess:         "Success",
	ResultUnknown:         "Unknown",
	ResultNilEnv:          "NilEnv",
	ResultBadEnv:          "BadEnv",
	ResultEnvDown:         "EnvDown",
	ResultBadTag:          "BadTag",
	ResultBadMagic:        "BadMagic",
	ResultHandleDown:      "HandleDown",
	ResultNilFactory:      "NilFactory",
	ResultNilHandleObject: "NilHandleObject",
	ResultNonNodeObject:   "NonNodeObject",
	ResultNonOpenObject:   "NonOpenObject",
	ResultNonNode:         "NonNode",
	ResultUsesUnderflow:   "UsesUnderflow",
	ResultRefsUnderflow:   "RefsUnderflow",
	ResultCountOverflow:   "CountOverflow",
	ResultHandleInUse:     "HandleInUse",
}

func (r Result) String() string {
	str, ok := resultMapping[r]
	if !ok {
		return "unknown Result"
	}

	return str
}

// Error is an error that carries the Result it should be reported as. Packages in this module
// declare their sentinel errors with NewError so that ResultFromError can recover the code from
// any wrapped chain.
type Error struct {
	result  Result
	message string
}

// NewError creates a sentinel error reported as the provided Result
func NewError(result Result, message string) *Error {
	return &Error{result: result, message: message}
}

func (e *Error) Error() string  { return e.message }
func (e *Error) Result() Result { return e.result }

// ResultFromError recovers the Result code for an error returned from this module. A nil error
// is ResultSuccess and an error carrying no code is ResultUnknown.
func ResultFromError(err error) Result {
	if err == nil {
		return ResultSuccess
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.result
	}

	return ResultUnknown
}
