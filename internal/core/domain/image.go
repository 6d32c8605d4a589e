package domain

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// WordSize is the number of bytes in one memory word.
const WordSize = 4

// Endianness selects how four input bytes form a word.
type Endianness string

// Supported byte orders.
const (
	// LittleEndian takes the first byte as least significant.
	LittleEndian Endianness = "little"

	// BigEndian takes the first byte as most significant.
	BigEndian Endianness = "big"
)

// ParseEndianness converts a user string into an Endianness.
// Accepts "little", "le", "big" and "be" in any case.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	default:
		return "", fmt.Errorf("%w: endianness %q (want little or big)", ErrInvalidOption, s)
	}
}

// IsValid returns true if the byte order is recognised.
func (e Endianness) IsValid() bool {
	return e == LittleEndian || e == BigEndian
}

// String returns the string representation.
func (e Endianness) String() string {
	return string(e)
}

// ByteOrder returns the encoding/binary order for this endianness.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// MemoryImage is the ordered word sequence assembled from record data.
// Word i lives at word address i.
type MemoryImage struct {
	Words []uint32
}

// Len returns the number of assembled words.
func (m MemoryImage) Len() int {
	return len(m.Words)
}

// Assemble groups bytes into words of WordSize bytes using the given byte
// order. Trailing bytes that do not fill a whole word are dropped; their
// count is returned alongside the image.
func Assemble(bytes []byte, e Endianness) (MemoryImage, int) {
	order := e.ByteOrder()
	n := len(bytes) / WordSize

	words := make([]uint32, n)
	for i := range words {
		words[i] = order.Uint32(bytes[i*WordSize:])
	}
	return MemoryImage{Words: words}, len(bytes) - n*WordSize
}

// AssembleRecords groups each record's bytes into words on its own. Bytes
// left over at the end of a record are dropped and never combine with the
// next record. The total dropped count is returned alongside the image.
func AssembleRecords(records [][]byte, e Endianness) (MemoryImage, int) {
	total := 0
	for _, data := range records {
		total += len(data)
	}

	words := make([]uint32, 0, total/WordSize)
	dropped := 0
	for _, data := range records {
		img, d := Assemble(data, e)
		words = append(words, img.Words...)
		dropped += d
	}
	return MemoryImage{Words: words}, dropped
}
