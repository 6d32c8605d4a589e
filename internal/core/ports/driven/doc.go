// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordParser: Decodes Intel HEX input into a byte stream (intelhex)
//   - RecordEmitter: Encodes a memory image as Intel HEX (intelhex)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ImageHasher: Digests the emitted image. Reports carry no digest without it.
//   - ConfigStore: Default conversion options. Built-in defaults apply without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
