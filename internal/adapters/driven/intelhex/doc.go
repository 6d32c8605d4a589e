// Package intelhex reads and writes Intel HEX records.
//
// The Parser accepts byte-addressed input, keeps only the data bytes and
// stops at the first end-of-file record. The Emitter writes a
// word-addressed stream where each data record holds one 32-bit word and
// its address is the word index.
package intelhex
