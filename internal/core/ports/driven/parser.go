package driven

import (
	"context"
	"io"
)

// RecordParser reads Intel HEX records and extracts their data bytes.
type RecordParser interface {
	// Parse consumes r line by line until an end-of-file record or the end
	// of input. When trimChecksum is set, each record contributes only its
	// declared byte count.
	Parse(ctx context.Context, r io.Reader, trimChecksum bool) (*ParseResult, error)
}

// ParseResult contains the output of a parse.
type ParseResult struct {
	// Bytes is the data byte stream in file order.
	Bytes []byte

	// Chunks holds the data of each record, in file order. Joined they
	// equal Bytes.
	Chunks [][]byte

	// Records is the number of data records consumed.
	Records int

	// Skipped is the number of lines that were not records.
	Skipped int

	// Lines is the number of input lines read, including the EOF record.
	Lines int

	// SawEOF is true when parsing stopped at an end-of-file record.
	SawEOF bool
}
