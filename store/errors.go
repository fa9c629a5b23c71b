package store

import "errors"

// ErrOutOfRange is returned by Get when an identifier is negative, past the
// sparse bound, or maps to a removed entity. It is the only query-side
// error this layer raises; mutating operations signal failure by returning
// InvalidID instead (see the package doc and the world package's error
// handling notes).
var ErrOutOfRange = errors.New("store: identifier out of range")
