package huffman

// BitMatcher walks a table as an implicit binary trie: feed it one bit at a
// time and it maintains the running (codeword, length) pair, testing table
// membership incrementally. Each matcher carries its own running state, so
// concurrent block decodes use one matcher per block.
type BitMatcher struct {
	entries map[uint64]byte // (codeword << 6 | length) -> symbol
	max     uint8
	code    uint32
	length  uint8
}

func matchKey(bits uint32, length uint8) uint64 {
	return uint64(bits)<<6 | uint64(length)
}

// NewBitMatcher prepares an incremental matcher for the table.
func NewBitMatcher(t *Table) *BitMatcher {
	m := &BitMatcher{
		entries: make(map[uint64]byte, AlphabetSize),
		max:     t.info.MaxCodeLength,
	}
	for i := 0; i < AlphabetSize; i++ {
		c := t.codes[i]
		if c.Length > 0 {
			m.entries[matchKey(c.Bits, c.Length)] = byte(i)
		}
	}
	return m
}

// Push appends one bit to the running codeword. It returns the decoded
// symbol with ok=true on a match (resetting the running state), ok=false
// while the codeword is still a proper prefix, and ErrNoCode once the
// codeword has outgrown the table's maximum codelength.
func (m *BitMatcher) Push(bit byte) (symbol byte, ok bool, err error) {
	m.code = m.code<<1 | uint32(bit&1)
	m.length++
	if sym, hit := m.entries[matchKey(m.code, m.length)]; hit {
		m.code, m.length = 0, 0
		return sym, true, nil
	}
	if m.length >= m.max {
		return 0, false, ErrNoCode
	}
	return 0, false, nil
}

// Reset discards the running codeword.
func (m *BitMatcher) Reset() {
	m.code, m.length = 0, 0
}
