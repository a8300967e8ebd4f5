package lzf

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 1024)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	dst := make([]byte, MaxCompressedSize(len(data)))
	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Compress(dst, data, m.mode)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput
	enc, err := CompressBytes(data, ModeNormal)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]byte, len(data))
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(dst, enc)
	}
}

func BenchmarkEncodeBlocks(b *testing.B) {
	data := benchInput
	for _, blockSize := range []int{4096, MaxBlockSize} {
		b.Run(fmt.Sprintf("Block=%d", blockSize), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = EncodeBlocks(data, blockSize, ModeNormal)
			}
		})
	}
}

// BenchmarkCodecCompression puts the raw LZF encoder next to the other block
// codecs on identical input.
func BenchmarkCodecCompression(b *testing.B) {
	data := benchInput

	b.Run("lzf", func(b *testing.B) {
		dst := make([]byte, MaxCompressedSize(len(data)))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = Compress(dst, data, ModeNormal)
		}
	})

	b.Run("lzf-best", func(b *testing.B) {
		dst := make([]byte, MaxCompressedSize(len(data)))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = Compress(dst, data, ModeBest)
		}
	})

	b.Run("lz4", func(b *testing.B) {
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = lz4.CompressBlock(data, dst, nil)
		}
	})

	b.Run("snappy", func(b *testing.B) {
		dst := make([]byte, snappy.MaxEncodedLen(len(data)))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = snappy.Encode(dst, data)
		}
	})

	b.Run("zstd", func(b *testing.B) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			b.Fatal(err)
		}
		defer enc.Close()
		dst := make([]byte, 0, len(data))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = enc.EncodeAll(data, dst[:0])
		}
	})
}
