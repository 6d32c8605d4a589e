package intelhex

import (
	"encoding/hex"
	"strings"
)

// Checksum returns the byte that brings the sum of b to zero modulo 256.
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return -sum
}

// Verify reports whether a complete record, checksum included, sums to
// zero modulo 256.
func Verify(record []byte) bool {
	var sum byte
	for _, v := range record {
		sum += v
	}
	return sum == 0
}

// FormatRecord renders record bytes as a line: a colon followed by
// uppercase hex digits.
func FormatRecord(b []byte) string {
	return ":" + strings.ToUpper(hex.EncodeToString(b))
}
