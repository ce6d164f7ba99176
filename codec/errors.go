package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendNotFound is returned when no backend with the requested
	// name is registered.
	ErrBackendNotFound = errors.New("decode backend not found")

	// ErrWordWidth is returned when a stream declares a packing word width
	// other than the fixed WordBits.
	ErrWordWidth = errors.New("unsupported packing word width")

	// ErrLayout is returned when a stream's block descriptors, trailing-bit
	// count, or word layout are inconsistent.
	ErrLayout = errors.New("inconsistent stream layout")

	// ErrTruncated is returned when a block's bit walk exhausts the payload
	// before reaching its declared symbol count.
	ErrTruncated = errors.New("bitstream exhausted before block symbol count")
)

// BlockError localizes a decode failure to one block and bit position.
// Blocks decode independently, so one block's corruption does not stop other
// blocks from being decoded and reported.
type BlockError struct {
	Block int    // block index within the stream
	Bit   uint64 // absolute bit position where decoding stopped
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d at bit %d: %v", e.Block, e.Bit, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
