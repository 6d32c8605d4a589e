package intelhex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
	"github.com/kimushu/altera-bootloader/internal/logger"
)

// Ensure Emitter implements the interface.
var _ driven.RecordEmitter = (*Emitter)(nil)

// Fixed records framing every emitted stream.
const (
	// ExtendedAddressRecord resets the address base to zero.
	ExtendedAddressRecord = ":020000020000FC"

	// EOFRecord ends the stream.
	EOFRecord = ":00000001FF"
)

// maxWordAddress is the last index representable in a 16-bit address field.
const maxWordAddress = 0xFFFF

// Emitter writes word-addressed Intel HEX.
type Emitter struct{}

// NewEmitter creates a new record emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// DataRecord returns the record for word at the given word index. The
// word is written most significant byte first. Indices above 0xFFFF are
// truncated to 16 bits.
func DataRecord(index int, word uint32) string {
	var b [9]byte
	b[0] = domain.WordSize
	binary.BigEndian.PutUint16(b[1:3], uint16(index))
	b[3] = byte(domain.RecordData)
	binary.BigEndian.PutUint32(b[4:8], word)
	b[8] = Checksum(b[:8])
	return FormatRecord(b[:])
}

// Emit writes image to w followed by zero words up to depth.
func (e *Emitter) Emit(w io.Writer, image domain.MemoryImage, depth int) (*driven.EmitResult, error) {
	bw := bufio.NewWriter(w)
	result := &driven.EmitResult{}

	writeLine := func(line string) error {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write record %d: %w", result.Lines+1, err)
		}
		result.Lines++
		return nil
	}

	total := image.Len()
	if depth > total {
		total = depth
	}
	if total-1 > maxWordAddress {
		logger.Warn("%d words exceed the 16-bit address field, addresses above 0x%04X wrap", total, maxWordAddress)
	}

	if err := writeLine(ExtendedAddressRecord); err != nil {
		return nil, err
	}

	for i, word := range image.Words {
		if err := writeLine(DataRecord(i, word)); err != nil {
			return nil, err
		}
		result.DataRecords++
	}

	for i := image.Len(); i < depth; i++ {
		if err := writeLine(DataRecord(i, 0)); err != nil {
			return nil, err
		}
		result.PaddingRecords++
	}

	if err := writeLine(EOFRecord); err != nil {
		return nil, err
	}

	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Debug("emitted %d data records, %d padding records", result.DataRecords, result.PaddingRecords)
	return result, nil
}
