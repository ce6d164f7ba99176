// Package sequential implements the reference decode backend: blocks are
// decoded one after another with a plain bit-by-bit walk of the code table.
package sequential

import (
	"bytes"
	"encoding/binary"

	"github.com/icza/bitio"

	"github.com/viharri/phuffman/codec"
	"github.com/viharri/phuffman/huffman"
)

// Decoder decodes streams block by block on the calling goroutine.
type Decoder struct{}

// New creates a new sequential decoder
func New() *Decoder {
	return &Decoder{}
}

// Name returns the registry name
func (d *Decoder) Name() string {
	return "sequential"
}

// Decode reconstructs the original byte sequence from the stream.
func (d *Decoder) Decode(stream *codec.Stream, table *huffman.Table) ([]byte, error) {
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	raw := wordBytes(stream.Words)
	payload := stream.PayloadBits()
	out := make([]byte, 0, stream.SymbolCount())

	for i := range stream.BlockOffsets {
		block, pos, err := decodeBlock(raw, payload, stream.BlockOffsets[i], stream.BlockSymbols[i], table)
		if err != nil {
			return nil, &codec.BlockError{Block: i, Bit: pos, Err: err}
		}
		out = append(out, block...)
	}
	return out, nil
}

// decodeBlock walks one block's bits starting at off, emitting symbols until
// count is reached. It returns the bit position reached, for error reports.
func decodeBlock(raw []byte, payload, off uint64, count int, table *huffman.Table) ([]byte, uint64, error) {
	r := bitio.NewReader(bytes.NewReader(raw[off/8:]))
	if skip := uint8(off % 8); skip > 0 {
		if _, err := r.ReadBits(skip); err != nil {
			return nil, off, codec.ErrTruncated
		}
	}

	m := huffman.NewBitMatcher(table)
	out := make([]byte, 0, count)
	pos := off
	for len(out) < count {
		if pos >= payload {
			return out, pos, codec.ErrTruncated
		}
		bit, err := r.ReadBool()
		if err != nil {
			return out, pos, codec.ErrTruncated
		}
		pos++

		var b byte
		if bit {
			b = 1
		}
		sym, ok, err := m.Push(b)
		if err != nil {
			return out, pos, err
		}
		if ok {
			out = append(out, sym)
		}
	}
	return out, pos, nil
}

func wordBytes(words []uint32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	return buf
}

func init() {
	codec.Register(New())
}
