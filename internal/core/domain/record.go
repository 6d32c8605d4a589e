package domain

import "fmt"

// RecordType identifies the kind of an Intel HEX record.
type RecordType uint8

// Record types known to the converter.
const (
	// RecordData carries payload bytes.
	RecordData RecordType = 0x00

	// RecordEOF terminates the stream.
	RecordEOF RecordType = 0x01

	// RecordExtendedAddress sets the address base of the records that
	// follow. Only ever written, never interpreted on input.
	RecordExtendedAddress RecordType = 0x02
)

// String returns a short name for the record type.
func (t RecordType) String() string {
	switch t {
	case RecordData:
		return "data"
	case RecordEOF:
		return "eof"
	case RecordExtendedAddress:
		return "extended-address"
	default:
		return fmt.Sprintf("type-%02X", uint8(t))
	}
}

// Record is one parsed input line.
type Record struct {
	// Size is the declared byte count. Informational only.
	Size uint8

	// Address is the 16-bit load offset. Records are processed in file
	// order, so it plays no part in assembly.
	Address uint16

	// Type is the record type. Anything other than RecordEOF is
	// handled as data.
	Type RecordType

	// Data is the raw hex digit string following the header.
	Data string

	// Line is the 1-based input line the record came from.
	Line int
}

// IsEOF reports whether the record ends the stream.
func (r Record) IsEOF() bool {
	return r.Type == RecordEOF
}

// ParseRecordHeader splits the 32-bit value of the eight header digits
// into its byte count, address and type fields.
func ParseRecordHeader(v uint32) (size uint8, address uint16, recordType RecordType) {
	size = uint8(v >> 24)
	address = uint16(v >> 8)
	recordType = RecordType(v)
	return size, address, recordType
}
