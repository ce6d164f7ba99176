package encode

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/huff0"

	"github.com/viharri/phuffman/decode/parallel"
	"github.com/viharri/phuffman/decode/sequential"
	"github.com/viharri/phuffman/huffman"
)

// benchData generates a skewed byte distribution, the kind of input entropy
// coders are built for.
func benchData(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, n)
	for i := range data {
		// Roughly geometric over a 32-symbol alphabet.
		v := 0
		for v < 31 && rng.Intn(2) == 0 {
			v++
		}
		data[i] = byte('A' + v%26)
	}
	return data
}

func BenchmarkEncode(b *testing.B) {
	data := benchData(64 << 10)
	table, err := huffman.FromData(data)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(data, table, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeSequential(b *testing.B) {
	data := benchData(64 << 10)
	table, err := huffman.FromData(data)
	if err != nil {
		b.Fatal(err)
	}
	stream, err := Encode(data, table, nil)
	if err != nil {
		b.Fatal(err)
	}
	d := sequential.New()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := d.Decode(stream, table)
		if err != nil {
			b.Fatal(err)
		}
		if !bytes.Equal(out, data) {
			b.Fatal("decode mismatch")
		}
	}
}

func BenchmarkDecodeParallel(b *testing.B) {
	data := benchData(64 << 10)
	table, err := huffman.FromData(data)
	if err != nil {
		b.Fatal(err)
	}
	stream, err := Encode(data, table, &Options{BlockSymbols: 2048})
	if err != nil {
		b.Fatal(err)
	}
	d := parallel.New()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := d.Decode(stream, table)
		if err != nil {
			b.Fatal(err)
		}
		if !bytes.Equal(out, data) {
			b.Fatal("decode mismatch")
		}
	}
}

// BenchmarkHuff0Compress measures klauspost/compress huff0 on the same input
// for a reference point.
func BenchmarkHuff0Compress(b *testing.B) {
	data := benchData(64 << 10)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := &huff0.Scratch{}
		if _, _, err := huff0.Compress1X(data, s); err != nil {
			b.Fatal(err)
		}
	}
}
