package lzf

// Raw LZF token format constants.
const (
	MaxLiteral = 1 << 5              // Maximum literal run length per control byte.
	MaxOffset  = 1 << 13             // Back-reference window; offsets span 0..MaxOffset-1.
	MaxMatch   = (1 << 8) + (1 << 3) // Maximum back-reference length (matches span 3..MaxMatch bytes).
)

// Framed "ZV" block stream constants (lzf utility block format).
const (
	MaxBlockSize = 1<<16 - 1 // Largest uncompressed payload of a single block.

	blockMagic0 = 'Z'
	blockMagic1 = 'V'

	blockTypeUncompressed = 0 // Payload stored as raw bytes.
	blockTypeCompressed   = 1 // Payload is a raw LZF token stream.

	rawHeaderSize  = 5 // Magic, type, 16-bit uncompressed length.
	compHeaderSize = 7 // Magic, type, 16-bit compressed and uncompressed lengths.
)

// MaxCompressedSize returns an output capacity guaranteed to hold the
// compressed form of n input bytes in either mode.
func MaxCompressedSize(n int) int {
	return ((n * 33) >> 5) + 1
}
