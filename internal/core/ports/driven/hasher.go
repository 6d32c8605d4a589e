package driven

import "github.com/kimushu/altera-bootloader/internal/core/domain"

// ImageHasher computes a content digest of a memory image.
type ImageHasher interface {
	// Sum returns the hex digest of image padded to depth words.
	Sum(image domain.MemoryImage, depth int) string
}
