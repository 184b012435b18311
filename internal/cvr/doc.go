// Package cvr implements Client View Records: immutable snapshots of the
// id → version pairs a client group has been sent for one collection, and the
// differ that turns two such snapshots into the puts and deletes of a patch.
//
// Everything in this package is pure computation. Nothing here performs I/O
// or blocks.
package cvr
