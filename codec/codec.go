// Package codec defines the shared decode contract every backend honors:
// the block-partitioned stream layout and the Backend interface, plus a
// registry of the available backends. Same stream and table must yield
// byte-identical output regardless of which backend executes the decode.
package codec

import "github.com/viharri/phuffman/huffman"

// WordBits is the fixed bit width of the packing words.
const WordBits = 32

// Stream is a packed, block-partitioned bitstream. Codewords are packed
// most-significant-bit first into 32-bit words; each block starts at a known
// absolute bit offset and holds a known number of symbols, so blocks decode
// independently of one another.
type Stream struct {
	// Words is the packed bitstream.
	Words []uint32

	// WordBits is the packing word width used by the producer. Decoders
	// reject any value other than the fixed WordBits constant.
	WordBits uint8

	// TrailingBits counts the padding bits at the end of the final word.
	// Padding carries no symbol data and must never be decoded.
	TrailingBits uint8

	// BlockOffsets holds each block's starting bit offset into Words.
	// Offsets are non-decreasing and never point into the padding.
	BlockOffsets []uint64

	// BlockSymbols holds the number of symbols encoded in each block.
	BlockSymbols []int
}

// BlockCount returns the number of blocks in the stream.
func (s *Stream) BlockCount() int {
	return len(s.BlockOffsets)
}

// PayloadBits returns the number of code-carrying bits in the stream.
func (s *Stream) PayloadBits() uint64 {
	return uint64(len(s.Words))*WordBits - uint64(s.TrailingBits)
}

// SymbolCount returns the total number of symbols across all blocks.
func (s *Stream) SymbolCount() int {
	total := 0
	for _, n := range s.BlockSymbols {
		total += n
	}
	return total
}

// Validate checks the layout invariants. Violations are rejected before any
// block is decoded.
func (s *Stream) Validate() error {
	if s.WordBits != WordBits {
		return ErrWordWidth
	}
	if s.TrailingBits >= WordBits {
		return ErrLayout
	}
	if len(s.Words) == 0 && s.TrailingBits > 0 {
		return ErrLayout
	}
	if len(s.BlockOffsets) != len(s.BlockSymbols) {
		return ErrLayout
	}
	payload := s.PayloadBits()
	prev := uint64(0)
	for i, off := range s.BlockOffsets {
		if off < prev || off > payload {
			return ErrLayout
		}
		if s.BlockSymbols[i] < 0 {
			return ErrLayout
		}
		if s.BlockSymbols[i] > 0 && off >= payload {
			return ErrLayout
		}
		prev = off
	}
	return nil
}

// Backend decodes block-partitioned streams. Implementations must be safe
// for concurrent use: the stream and table are read-only for the duration of
// a decode.
type Backend interface {
	// Decode reconstructs the original byte sequence from the stream.
	Decode(stream *Stream, table *huffman.Table) ([]byte, error)

	// Name returns the backend's registry name.
	Name() string
}
