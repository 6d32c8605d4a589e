// Package digest fingerprints memory images so two conversions can be
// compared without diffing their HEX output.
package digest

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
)

// Ensure Blake3Hasher implements the interface.
var _ driven.ImageHasher = (*Blake3Hasher)(nil)

// Blake3Hasher digests the emitted word image with BLAKE3-256.
// Words are hashed most significant byte first, the order they appear in
// output records, so the digest does not depend on input endianness once
// the words are equal.
type Blake3Hasher struct{}

// NewBlake3Hasher creates a new BLAKE3 image hasher.
func NewBlake3Hasher() *Blake3Hasher {
	return &Blake3Hasher{}
}

// Sum returns the hex digest of image followed by zero words up to depth.
func (h *Blake3Hasher) Sum(image domain.MemoryImage, depth int) string {
	hasher := blake3.New()

	var buf [domain.WordSize]byte
	for _, w := range image.Words {
		binary.BigEndian.PutUint32(buf[:], w)
		_, _ = hasher.Write(buf[:])
	}

	clear(buf[:])
	for i := image.Len(); i < depth; i++ {
		_, _ = hasher.Write(buf[:])
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
