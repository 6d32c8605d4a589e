// Package stream opens conversion inputs and outputs.
//
// An empty path or "-" selects the process standard streams. Input paths
// ending in .xz are decompressed on the fly. File outputs are written to a
// temporary file in the target directory and renamed into place on
// Commit, so a failed conversion never leaves a truncated image behind.
package stream
