package huffman

import "sort"

// leaf pairs a used symbol with its codeword length.
type leaf struct {
	symbol byte
	length uint8
}

// leavesFromLengths collects the non-zero entries of a per-symbol length
// array, sorted by length descending then symbol ascending. That ordering is
// what the canonical assignment below depends on.
func leavesFromLengths(lengths []byte) ([]leaf, error) {
	leaves := make([]leaf, 0, len(lengths))
	for i, l := range lengths {
		if l == 0 {
			continue
		}
		if l >= MaxCodeLength {
			return nil, ErrCodeLength
		}
		leaves = append(leaves, leaf{symbol: byte(i), length: l})
	}
	if len(leaves) == 0 {
		return nil, ErrNoSymbols
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].length != leaves[j].length {
			return leaves[i].length > leaves[j].length
		}
		return leaves[i].symbol < leaves[j].symbol
	})
	return leaves, nil
}

// assignCodes fills the table with the canonical codeword for every leaf.
// Walking from longest to shortest lengths: the first symbol gets codeword 0;
// an equal-length successor gets the previous codeword plus one; a shorter
// successor gets the incremented codeword re-based into the narrower width by
// a right shift. The numeric value of every codeword is therefore determined
// by the sorted lengths alone, which keeps independently built tables
// bit-identical and the result prefix-free.
func assignCodes(t *Table, leaves []leaf) {
	last := Code{Bits: 0, Length: leaves[0].length}
	t.info.MaxCodeLength = leaves[0].length
	t.codes[leaves[0].symbol] = last

	for _, lf := range leaves[1:] {
		if lf.length == last.Length {
			last.Bits++
		} else {
			// Increment first, then shift into the shorter width.
			last.Bits = (last.Bits + 1) >> (last.Length - lf.length)
		}
		last.Length = lf.length
		t.codes[lf.symbol] = last
	}
}
