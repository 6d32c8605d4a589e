package driven

import (
	"io"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
)

// RecordEmitter writes a memory image as a word-addressed Intel HEX stream.
type RecordEmitter interface {
	// Emit writes the header record, one data record per word, zero
	// padding up to depth and the end-of-file record.
	Emit(w io.Writer, image domain.MemoryImage, depth int) (*EmitResult, error)
}

// EmitResult summarises an emitted stream.
type EmitResult struct {
	// DataRecords is the number of records carrying image words.
	DataRecords int

	// PaddingRecords is the number of zero-filled records.
	PaddingRecords int

	// Lines is the total number of lines written.
	Lines int
}
