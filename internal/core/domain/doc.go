// Package domain defines the core entities of the HEX converter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One parsed Intel HEX input line
//   - MemoryImage: Ordered 32-bit words assembled from record data
//   - ConvertOptions: Byte order, output depth and parsing switches
//   - DepthExceededWarning: Non-fatal diagnostic for oversized images
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
