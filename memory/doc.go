// Package memory provides a page-granular, growable linear memory: the byte
// address space a compute entry point can see.
//
// Addresses are plain integer byte offsets validated on every access. The
// size only grows. Growth reallocates the backing store, so every
// [Float64Window] and every slice returned by [Memory.Float64View] is tied to
// the growth epoch it was created in; windows refuse access once the memory
// has grown, and views must be re-derived.
//
// A Memory is not safe for concurrent use.
package memory
