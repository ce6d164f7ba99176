package huffman

import "errors"

// Construction and lookup errors
var (
	// ErrTableSize is returned when a codelength table input does not hold
	// exactly one length per alphabet symbol.
	ErrTableSize = errors.New("codelength table size mismatch")

	// ErrCodeLength is returned when a declared or derived codelength
	// reaches the fixed maximum.
	ErrCodeLength = errors.New("codelength exceeds maximum")

	// ErrDataSize is returned when a raw data block exceeds MaxDataSize.
	ErrDataSize = errors.New("data block too large")

	// ErrNoSymbols is returned when no symbol carries a non-zero codelength.
	ErrNoSymbols = errors.New("no symbols to encode")

	// ErrNoCode is returned when a running codeword grows past the table's
	// maximum codelength without matching any entry.
	ErrNoCode = errors.New("no matching code")
)
