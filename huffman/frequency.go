package huffman

import "sort"

// Frequency is one symbol's occurrence count within a data block.
// Zero-count symbols are never materialized.
type Frequency struct {
	Symbol byte
	Count  int
}

// CountFrequencies tallies symbol occurrences in data and returns the
// non-zero counts sorted ascending by count, ties broken by symbol value so
// tree construction stays reproducible.
func CountFrequencies(data []byte) []Frequency {
	var counts [AlphabetSize]int
	for _, b := range data {
		counts[b]++
	}

	freqs := make([]Frequency, 0, AlphabetSize)
	for i, n := range counts {
		if n > 0 {
			freqs = append(freqs, Frequency{Symbol: byte(i), Count: n})
		}
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count < freqs[j].Count
		}
		return freqs[i].Symbol < freqs[j].Symbol
	})
	return freqs
}
