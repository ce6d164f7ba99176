// Package huffman builds canonical Huffman code tables for a fixed byte
// alphabet, either from raw data statistics or from a shipped list of
// per-symbol codelengths.
package huffman

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// AlphabetSize is the number of distinct symbols (one per byte value).
	AlphabetSize = 256

	// MaxCodeLength bounds codeword bit lengths. Declared lengths must be
	// strictly less, so every codeword fits in a uint32.
	MaxCodeLength = 32

	// MaxDataSize is the largest raw data block a table may be built from.
	MaxDataSize = 1 << 20
)

// Code is one table entry: the codeword bits and their count.
// A Length of 0 means the symbol is unused.
type Code struct {
	Bits   uint32 // codeword, most significant bit first within Length bits
	Length uint8
}

// TableInfo summarizes a built table.
type TableInfo struct {
	// MaxCodeLength is the longest codeword length present in the table.
	MaxCodeLength uint8
}

// Table is an immutable canonical Huffman code table: one Code per symbol
// value. Built once by FromData or FromLengths and read-only afterwards, so
// it is safe to share across concurrent decodes.
type Table struct {
	codes [AlphabetSize]Code
	info  TableInfo
}

// At returns the code assigned to symbol.
func (t *Table) At(symbol byte) Code {
	return t.codes[symbol]
}

// Info returns the table summary metadata.
func (t *Table) Info() TableInfo {
	return t.info
}

// Lengths returns the per-symbol codelengths, one byte per alphabet slot.
// The result is suitable as FromLengths input for rebuilding the table.
func (t *Table) Lengths() []byte {
	lengths := make([]byte, AlphabetSize)
	for i, c := range t.codes {
		lengths[i] = c.Length
	}
	return lengths
}

// Equal reports whether both tables hold identical codeword/codelength
// entries for every symbol.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	return t.codes == other.codes
}

// Fingerprint returns a 64-bit digest of all table entries, usable as a
// cheap identity for caching or cross-process comparison.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	var entry [5]byte
	for _, c := range t.codes {
		binary.BigEndian.PutUint32(entry[:4], c.Bits)
		entry[4] = c.Length
		d.Write(entry[:])
	}
	return d.Sum64()
}

// String renders the table as one codelength per symbol slot across the
// whole alphabet.
func (t *Table) String() string {
	var sb strings.Builder
	for _, c := range t.codes {
		sb.WriteString(strconv.Itoa(int(c.Length)))
	}
	return sb.String()
}
