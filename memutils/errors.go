package memutils

import "github.com/pkg/errors"

// CorruptionError is returned by validation methods when the guard words written over a free
// frame's padding are no longer intact, which means something wrote through a stale handle
var CorruptionError error = errors.New("guard words over free frame storage were overwritten")
