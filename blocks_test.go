package lzf

import (
	"bytes"
	"errors"
	"testing"
)

func TestFramedRoundTrip(t *testing.T) {
	input := lcgData(200000)

	for _, m := range modes {
		for _, blockSize := range []int{1, 64, 4096, MaxBlockSize} {
			framed, err := EncodeBlocks(input, blockSize, m.mode)
			if err != nil {
				t.Fatalf("%s block=%d: %v", m.name, blockSize, err)
			}

			decoded, err := DecodeBlocks(framed)
			if err != nil {
				t.Fatalf("%s block=%d: %v", m.name, blockSize, err)
			}
			if !bytes.Equal(decoded, input) {
				t.Fatalf("%s block=%d: round trip mismatch", m.name, blockSize)
			}
		}
	}
}

func TestFramedRoundTripCompressible(t *testing.T) {
	input := bytes.Repeat([]byte("framed lzf block stream "), 4096)

	framed, err := EncodeBlocks(input, MaxBlockSize, ModeNormal)
	if err != nil {
		t.Fatal(err)
	}
	if len(framed) >= len(input) {
		t.Fatalf("framed %d bytes from %d, want shrink", len(framed), len(input))
	}

	decoded, err := DecodeBlocks(framed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, input) {
		t.Fatal("round trip mismatch")
	}
}

func TestEncodeBlocksEmptyInput(t *testing.T) {
	framed, err := EncodeBlocks(nil, 4096, ModeNormal)
	if err != nil {
		t.Fatal(err)
	}
	if len(framed) != 0 {
		t.Fatalf("empty input framed to %d bytes", len(framed))
	}

	decoded, err := DecodeBlocks(framed)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 0 {
		t.Fatalf("got %d bytes from empty stream", len(decoded))
	}
}

func TestEncodeBlocksInvalidParameters(t *testing.T) {
	data := []byte("x")
	for _, blockSize := range []int{0, -1, MaxBlockSize + 1} {
		if _, err := EncodeBlocks(data, blockSize, ModeNormal); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("block=%d: want ErrInvalidParameter, got %v", blockSize, err)
		}
	}
	if _, err := EncodeBlocks(data, 4096, CompressionMode(3)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("want ErrInvalidParameter for unknown mode")
	}
}

func TestDecodeBlocksTerminator(t *testing.T) {
	input := lcgData(10000)
	framed, err := EncodeBlocks(input, 4096, ModeNormal)
	if err != nil {
		t.Fatal(err)
	}

	plain, err := DecodeBlocks(framed)
	if err != nil {
		t.Fatal(err)
	}
	terminated, err := DecodeBlocks(append(framed, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plain, terminated) || !bytes.Equal(plain, input) {
		t.Fatal("terminator changed decode result")
	}
}

func TestDecodeBlocksBadHeader(t *testing.T) {
	for _, src := range [][]byte{
		{'Z'},                  // shorter than a raw block header
		{'Z', 'V', 0},          // truncated header
		{'X', 'V', 0, 0, 0},    // wrong first magic byte
		{'Z', 'W', 0, 0, 0},    // wrong second magic byte
		{'Z', 'V', 1, 0, 1, 0}, // compressed header cut short
	} {
		if _, err := DecodeBlocks(src); !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("%x: want ErrInvalidHeader, got %v", src, err)
		}
	}
}

func TestDecodeBlocksUnknownType(t *testing.T) {
	src := []byte{'Z', 'V', 2, 0, 0}
	if _, err := DecodeBlocks(src); !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("want ErrUnknownBlockType, got %v", err)
	}
}

func TestDecodeBlocksTruncatedPayload(t *testing.T) {
	// Raw block declaring 16 payload bytes but carrying 3.
	raw := []byte{'Z', 'V', 0, 0x00, 0x10, 1, 2, 3}
	if _, err := DecodeBlocks(raw); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("raw: want ErrInvalidData, got %v", err)
	}

	// Compressed block declaring 2 payload bytes but carrying 1.
	comp := []byte{'Z', 'V', 1, 0x00, 0x02, 0x00, 0x04, 0x00}
	if _, err := DecodeBlocks(comp); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("compressed: want ErrInvalidData, got %v", err)
	}
}

func TestDecodeBlocksLengthMismatch(t *testing.T) {
	// Token stream [0x00 'x'] decodes to 1 byte, header declares 2.
	src := []byte{'Z', 'V', 1, 0x00, 0x02, 0x00, 0x02, 0x00, 'x'}
	if _, err := DecodeBlocks(src); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("want ErrInvalidData, got %v", err)
	}
}

func TestTinyBlocksStoredRaw(t *testing.T) {
	// With block size 1 no block can save space, so every block is type 0.
	input := []byte("hello")
	framed, err := EncodeBlocks(input, 1, ModeNormal)
	if err != nil {
		t.Fatal(err)
	}
	if len(framed) != len(input)*(rawHeaderSize+1) {
		t.Fatalf("framed %d bytes, want %d", len(framed), len(input)*(rawHeaderSize+1))
	}
	for i := 0; i < len(framed); i += rawHeaderSize + 1 {
		if framed[i+2] != blockTypeUncompressed {
			t.Fatalf("block at %d has type %d", i, framed[i+2])
		}
	}

	decoded, err := DecodeBlocks(framed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, input) {
		t.Fatalf("got %q", decoded)
	}
}
