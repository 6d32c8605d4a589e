package driving

import (
	"context"
	"io"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
)

// Converter turns a byte-addressed HEX stream into a word-addressed one.
type Converter interface {
	// Convert reads records from in and writes the re-encoded stream to out.
	Convert(ctx context.Context, in io.Reader, out io.Writer, opts domain.ConvertOptions) (*ConversionReport, error)

	// Inspect parses and assembles without producing output.
	Inspect(ctx context.Context, in io.Reader, opts domain.ConvertOptions) (*ConversionReport, error)
}

// ConversionReport describes one run.
type ConversionReport struct {
	// Records is the number of data records consumed.
	Records int

	// SkippedLines is the number of non-record lines.
	SkippedLines int

	// Bytes is the length of the assembled byte stream.
	Bytes int

	// Words is the number of assembled words.
	Words int

	// DroppedBytes is the count of trailing bytes that did not fill a word.
	DroppedBytes int

	// PaddingWords is the number of zero words added to reach the depth.
	PaddingWords int

	// Depth is the configured depth.
	Depth int

	// Endianness is the byte order used for assembly.
	Endianness domain.Endianness

	// JoinRecords is true when words were assembled across record
	// boundaries.
	JoinRecords bool

	// SawEOF is true when input ended with an end-of-file record.
	SawEOF bool

	// Warning is set when the image exceeds a nonzero depth.
	Warning *domain.DepthExceededWarning

	// Digest is the hex digest of the output image. Empty without a hasher.
	Digest string
}
