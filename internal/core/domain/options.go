package domain

import "fmt"

// ConvertOptions controls a single conversion run.
type ConvertOptions struct {
	// Endianness is the byte order used to assemble input words.
	Endianness Endianness

	// Depth is the minimum number of words to emit. Shorter images are
	// padded with zero words; longer ones raise a DepthExceededWarning.
	// Zero disables both.
	Depth int

	// TrimChecksum limits each record's data to its declared byte count,
	// which leaves the trailing checksum byte out of the byte stream.
	TrimChecksum bool

	// JoinRecords assembles words from the data of all records as one
	// continuous byte stream. By default each record is grouped on its
	// own and its partial trailing word is dropped.
	JoinRecords bool
}

// DefaultConvertOptions returns little-endian, unconstrained options.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Endianness: LittleEndian,
	}
}

// Validate checks option values.
func (o ConvertOptions) Validate() error {
	if !o.Endianness.IsValid() {
		return fmt.Errorf("%w: endianness %q", ErrInvalidOption, o.Endianness)
	}
	if o.Depth < 0 {
		return fmt.Errorf("%w: depth %d must not be negative", ErrInvalidOption, o.Depth)
	}
	return nil
}

// DepthExceededWarning reports an image larger than the configured depth.
// It never stops a conversion.
type DepthExceededWarning struct {
	// Depth is the assembled word count.
	Depth int

	// MaxDepth is the configured depth.
	MaxDepth int
}

// String renders the diagnostic line written to stderr.
func (w DepthExceededWarning) String() string {
	return fmt.Sprintf("warning: Memory depth (%d) exceeds maximum memory depth (%d)", w.Depth, w.MaxDepth)
}

// CheckDepth returns a warning when a nonzero depth is exceeded by image.
func CheckDepth(image MemoryImage, depth int) *DepthExceededWarning {
	if depth <= 0 || image.Len() <= depth {
		return nil
	}
	return &DepthExceededWarning{Depth: image.Len(), MaxDepth: depth}
}

// PaddingWords returns how many zero words are needed to reach depth.
func PaddingWords(image MemoryImage, depth int) int {
	if depth > image.Len() {
		return depth - image.Len()
	}
	return 0
}
