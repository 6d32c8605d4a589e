package intelhex

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
	"github.com/kimushu/altera-bootloader/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.RecordParser = (*Parser)(nil)

// recordPattern matches a colon, eight header digits and at least one
// byte of trailing data. The trailing group includes the checksum.
var recordPattern = regexp.MustCompile(`(?i)^:([0-9a-f]{8})([0-9a-f]{2,})$`)

// maxLineLength bounds a single input line.
const maxLineLength = 1024 * 1024

// Parser decodes Intel HEX text into a byte stream.
type Parser struct{}

// NewParser creates a new record parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine matches a single line against the record pattern.
// The second return value is false for lines that are not records.
func ParseLine(line string, lineNum int) (domain.Record, bool) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Record{}, false
	}

	// Eight hex digits always fit in 32 bits.
	header, _ := strconv.ParseUint(m[1], 16, 32)
	size, addr, typ := domain.ParseRecordHeader(uint32(header))

	return domain.Record{
		Size:    size,
		Address: addr,
		Type:    typ,
		Data:    m[2],
		Line:    lineNum,
	}, true
}

// DecodeData returns the bytes of a record's data field. With
// trimChecksum set, bytes past the declared size are discarded.
func DecodeData(rec domain.Record, trimChecksum bool) ([]byte, error) {
	if len(rec.Data)%2 != 0 {
		return nil, &RecordError{
			Line:   rec.Line,
			Reason: fmt.Sprintf("odd number of hex digits (%d)", len(rec.Data)),
			Err:    domain.ErrInvalidRecordFormat,
		}
	}

	data, err := hex.DecodeString(rec.Data)
	if err != nil {
		return nil, &RecordError{Line: rec.Line, Reason: err.Error(), Err: domain.ErrInvalidRecordFormat}
	}

	if trimChecksum {
		data = trimToSize(rec, data)
	}
	return data, nil
}

func trimToSize(rec domain.Record, data []byte) []byte {
	if int(rec.Size) < len(data) {
		return data[:rec.Size]
	}
	return data
}

// checksumMatches verifies a record whose data is exactly its declared
// size plus one checksum byte. Records of any other length carry no
// checksum to verify and always match.
func checksumMatches(rec domain.Record, data []byte) bool {
	if len(data) != int(rec.Size)+1 {
		return true
	}
	full := make([]byte, 0, 4+len(data))
	full = append(full, rec.Size, byte(rec.Address>>8), byte(rec.Address), byte(rec.Type))
	full = append(full, data...)
	return Verify(full)
}

// Parse reads records from r until an end-of-file record or the end of
// input and returns the concatenated data bytes.
func (p *Parser) Parse(ctx context.Context, r io.Reader, trimChecksum bool) (*driven.ParseResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	result := &driven.ParseResult{}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Lines++

		rec, ok := ParseLine(scanner.Text(), result.Lines)
		if !ok {
			result.Skipped++
			logger.Debug("line %d: not a record, skipped", result.Lines)
			continue
		}

		if rec.IsEOF() {
			result.SawEOF = true
			logger.Debug("line %d: end of file record", result.Lines)
			break
		}

		if rec.Type != domain.RecordData {
			logger.Debug("line %d: %s record treated as data", result.Lines, rec.Type)
		}

		raw, err := DecodeData(rec, false)
		if err != nil {
			return nil, err
		}
		if !checksumMatches(rec, raw) {
			logger.Warn("line %d: checksum mismatch", result.Lines)
		}

		data := raw
		if trimChecksum {
			data = trimToSize(rec, raw)
		}
		result.Bytes = append(result.Bytes, data...)
		result.Chunks = append(result.Chunks, data)
		result.Records++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input at line %d: %w", result.Lines+1, err)
	}

	return result, nil
}
