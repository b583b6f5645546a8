package store

import "errors"

// ErrWrongType is returned by a typed operation applied to a key whose
// Entry holds a different Value variant (spec.md §4.3's "type
// discipline"). The Store is left byte-identical when this error is
// returned.
var ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
