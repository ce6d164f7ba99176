// Package parallel implements the block-parallel decode backend. Block
// independence is the property that makes this possible: every block starts
// at a known bit offset with a known symbol count, so each one is handed to
// its own goroutine writing a disjoint region of the output. It honors the
// same contract as the sequential backend and stands in for the GPU sibling
// of the original design.
package parallel

import (
	"errors"
	"sync"

	"github.com/viharri/phuffman/codec"
	"github.com/viharri/phuffman/huffman"
)

// Decoder decodes every block concurrently.
type Decoder struct{}

// New creates a new parallel decoder
func New() *Decoder {
	return &Decoder{}
}

// Name returns the registry name
func (d *Decoder) Name() string {
	return "parallel"
}

// Decode reconstructs the original byte sequence from the stream. All blocks
// are decoded even when some fail; every failing block is reported with its
// index and bit position.
func (d *Decoder) Decode(stream *codec.Stream, table *huffman.Table) ([]byte, error) {
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	// Disjoint output regions, one per block.
	starts := make([]int, stream.BlockCount()+1)
	for i, n := range stream.BlockSymbols {
		starts[i+1] = starts[i] + n
	}
	out := make([]byte, starts[stream.BlockCount()])

	payload := stream.PayloadBits()
	blockErrs := make([]error, stream.BlockCount())

	var wg sync.WaitGroup
	for i := range stream.BlockOffsets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pos, err := decodeBlock(
				stream.Words, payload,
				stream.BlockOffsets[i],
				out[starts[i]:starts[i+1]],
				table,
			)
			if err != nil {
				blockErrs[i] = &codec.BlockError{Block: i, Bit: pos, Err: err}
			}
		}(i)
	}
	wg.Wait()

	if err := errors.Join(blockErrs...); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeBlock fills dst with the block's symbols, reading bits straight out
// of the packed words.
func decodeBlock(words []uint32, payload, off uint64, dst []byte, table *huffman.Table) (uint64, error) {
	m := huffman.NewBitMatcher(table)
	pos := off
	for n := 0; n < len(dst); {
		if pos >= payload {
			return pos, codec.ErrTruncated
		}
		bit := byte(words[pos/codec.WordBits] >> (codec.WordBits - 1 - pos%codec.WordBits) & 1)
		pos++

		sym, ok, err := m.Push(bit)
		if err != nil {
			return pos, err
		}
		if ok {
			dst[n] = sym
			n++
		}
	}
	return pos, nil
}

func init() {
	codec.Register(New())
}
