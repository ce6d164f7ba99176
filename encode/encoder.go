// Package encode provides a conforming block encoder: it packs canonical
// codewords most-significant-bit first into 32-bit words and records the
// block layout (per-block bit offset and symbol count) that lets any decode
// backend recover the blocks independently.
package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/icza/bitio"

	"github.com/viharri/phuffman/codec"
	"github.com/viharri/phuffman/huffman"
)

// DefaultBlockSymbols is the block size used when no option is given.
const DefaultBlockSymbols = 4096

var (
	// ErrUnmappedSymbol is returned when the input contains a symbol the
	// table assigns no code to.
	ErrUnmappedSymbol = errors.New("symbol has no code in table")

	// ErrBlockSymbols is returned for a non-positive block symbol count.
	ErrBlockSymbols = errors.New("invalid block symbol count")
)

// Options contains encoding options
type Options struct {
	// BlockSymbols is the number of symbols per block. Smaller blocks give
	// more decode parallelism at the cost of a larger block descriptor list.
	BlockSymbols int
}

// Validate checks if the options are valid
func (o *Options) Validate() error {
	if o.BlockSymbols <= 0 {
		return fmt.Errorf("%w: %d", ErrBlockSymbols, o.BlockSymbols)
	}
	return nil
}

// Encode packs data's codewords into a block-partitioned stream. A nil opts
// uses DefaultBlockSymbols.
func Encode(data []byte, table *huffman.Table, opts *Options) (*codec.Stream, error) {
	blockSymbols := DefaultBlockSymbols
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		blockSymbols = opts.BlockSymbols
	}
	if len(data) > huffman.MaxDataSize {
		return nil, huffman.ErrDataSize
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	stream := &codec.Stream{WordBits: codec.WordBits}
	bit := uint64(0)

	for i, sym := range data {
		if i%blockSymbols == 0 {
			n := len(data) - i
			if n > blockSymbols {
				n = blockSymbols
			}
			stream.BlockOffsets = append(stream.BlockOffsets, bit)
			stream.BlockSymbols = append(stream.BlockSymbols, n)
		}
		c := table.At(sym)
		if c.Length == 0 {
			return nil, fmt.Errorf("%w: %#x", ErrUnmappedSymbol, sym)
		}
		if err := w.WriteBits(uint64(c.Bits), c.Length); err != nil {
			return nil, err
		}
		bit += uint64(c.Length)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	// Pad the byte stream out to a whole number of 32-bit words.
	raw := buf.Bytes()
	for len(raw)%4 != 0 {
		raw = append(raw, 0)
	}
	stream.Words = make([]uint32, len(raw)/4)
	for i := range stream.Words {
		stream.Words[i] = binary.BigEndian.Uint32(raw[4*i:])
	}
	stream.TrailingBits = uint8(uint64(len(stream.Words))*codec.WordBits - bit)
	return stream, nil
}
