package codec

import (
	"fmt"

	"github.com/viharri/phuffman/huffman"
)

// PackSymbols is a minimal conforming encoder for testing: it packs the
// table's codewords for symbols most-significant-bit first into 32-bit
// words, splitting the stream into blocks of at most blockSymbols symbols.
// It shares no code with the encode package, so decoder tests exercise the
// contract against an independently produced stream.
func PackSymbols(table *huffman.Table, symbols []byte, blockSymbols int) (*Stream, error) {
	if blockSymbols <= 0 {
		return nil, fmt.Errorf("%w: block symbol count %d", ErrLayout, blockSymbols)
	}

	s := &Stream{WordBits: WordBits}
	var word uint32
	used := uint8(0)
	bit := uint64(0)

	for i, sym := range symbols {
		if i%blockSymbols == 0 {
			n := len(symbols) - i
			if n > blockSymbols {
				n = blockSymbols
			}
			s.BlockOffsets = append(s.BlockOffsets, bit)
			s.BlockSymbols = append(s.BlockSymbols, n)
		}
		c := table.At(sym)
		if c.Length == 0 {
			return nil, fmt.Errorf("symbol %#x has no code", sym)
		}
		for j := int(c.Length) - 1; j >= 0; j-- {
			word = word<<1 | (c.Bits>>uint(j))&1
			used++
			bit++
			if used == WordBits {
				s.Words = append(s.Words, word)
				word, used = 0, 0
			}
		}
	}

	if used > 0 {
		s.TrailingBits = WordBits - used
		s.Words = append(s.Words, word<<s.TrailingBits)
	}
	return s, nil
}
