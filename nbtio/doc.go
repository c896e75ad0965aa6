// Package nbtio reads and writes root compounds over compressed and
// uncompressed streams and files.
//
// Streams opened here are closed on every exit path.  Streams passed
// in by the caller are never closed.
package nbtio
