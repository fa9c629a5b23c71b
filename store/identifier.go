// Package store implements the generational dense/sparse entity container
// used uniformly for bodies, shape groups, shapes, and primitive data, plus
// the fixed fan-out Link record that ties parents to children.
package store

// Identifier indexes into the store of its corresponding entity type. It is
// never a raw pointer. -1 is the sentinel InvalidID.
type Identifier int16

const InvalidID Identifier = -1

// maxLiveIDs is the largest identifier Store.Insert hands out: ids
// 0..maxLiveIDs give 2^15 usable ids in the signed 16-bit range. Once the
// last one is issued the next id wraps negative and Insert returns
// InvalidID.
const maxLiveIDs = 1<<15 - 1
