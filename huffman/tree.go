package huffman

import "container/heap"

// Huffman tree merge over an index-based node arena. Nodes are addressed by
// slice index instead of pointers; a parent is always appended after both of
// its children, so leaf depths fall out of a single reverse pass.

type treeNode struct {
	symbol      int16 // -1 for internal nodes
	left, right int32 // arena indices, -1 for leaves
}

type mergeItem struct {
	count int
	seq   int // insertion order, deterministic tie-break
	node  int32
}

type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count < h[j].count
	}
	return h[i].seq < h[j].seq
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(mergeItem))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildLengths merges the frequency list into a Huffman tree and returns
// the per-symbol codeword lengths (leaf depths), one byte per alphabet slot.
func buildLengths(freqs []Frequency) []byte {
	lengths := make([]byte, AlphabetSize)
	if len(freqs) == 0 {
		return lengths
	}
	if len(freqs) == 1 {
		// A single-symbol alphabet still needs a 1-bit code.
		lengths[freqs[0].Symbol] = 1
		return lengths
	}

	nodes := make([]treeNode, 0, 2*len(freqs)-1)
	h := make(mergeHeap, 0, len(freqs))
	for i, f := range freqs {
		nodes = append(nodes, treeNode{symbol: int16(f.Symbol), left: -1, right: -1})
		h = append(h, mergeItem{count: f.Count, seq: i, node: int32(i)})
	}
	heap.Init(&h)

	seq := len(freqs)
	for h.Len() > 1 {
		first := heap.Pop(&h).(mergeItem)
		second := heap.Pop(&h).(mergeItem)
		nodes = append(nodes, treeNode{symbol: -1, left: first.node, right: second.node})
		heap.Push(&h, mergeItem{
			count: first.count + second.count,
			seq:   seq,
			node:  int32(len(nodes) - 1),
		})
		seq++
	}

	// Parents follow children in the arena, so walking backwards from the
	// root assigns every depth before it is read.
	depths := make([]uint8, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if n.left < 0 {
			lengths[n.symbol] = depths[i]
			continue
		}
		depths[n.left] = depths[i] + 1
		depths[n.right] = depths[i] + 1
	}
	return lengths
}
