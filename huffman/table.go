package huffman

// FromLengths builds a table from a serialized codelength array: exactly one
// length per alphabet symbol, 0 marking unused symbols. This is the path
// taken when the table is shipped alongside encoded data instead of being
// rebuilt from the original bytes.
func FromLengths(lengths []byte) (*Table, error) {
	if len(lengths) != AlphabetSize {
		return nil, ErrTableSize
	}
	leaves, err := leavesFromLengths(lengths)
	if err != nil {
		return nil, err
	}
	t := &Table{}
	assignCodes(t, leaves)
	return t, nil
}

// FromData builds a table from raw data statistics: count frequencies, merge
// the Huffman tree, read off leaf depths, assign canonical codewords.
func FromData(data []byte) (*Table, error) {
	if len(data) > MaxDataSize {
		return nil, ErrDataSize
	}
	freqs := CountFrequencies(data)
	leaves, err := leavesFromLengths(buildLengths(freqs))
	if err != nil {
		return nil, err
	}
	t := &Table{}
	assignCodes(t, leaves)
	return t, nil
}
