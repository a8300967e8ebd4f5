package lzf

// CompressionMode selects the raw encoder's match-finding strategy.
type CompressionMode int

// Compression mode constants.
const (
	// ModeNormal is the fast greedy mode: a direct-mapped hash table with one
	// candidate per position (liblzf lzf_compress behavior).
	ModeNormal CompressionMode = iota
	// ModeBest walks a per-hash chain of earlier positions and keeps the
	// longest match (liblzf lzf_compress_best behavior). Better ratio, slower.
	ModeBest
)

func (m CompressionMode) valid() bool {
	return m == ModeNormal || m == ModeBest
}

// WriterOptions configures a streaming Writer.
type WriterOptions struct {
	// BlockSize is the uncompressed payload size of each framed block,
	// 1..MaxBlockSize. The trailing block may be shorter.
	BlockSize int
	// Mode selects the raw compression mode used per block.
	Mode CompressionMode
	// EOFMarker: if true, Close appends a single zero terminator byte after
	// the final block, matching the historical lzf utility stream ending.
	EOFMarker bool
}

// DefaultWriterOptions returns options for default behavior: maximum block
// size, normal mode, no trailing terminator.
func DefaultWriterOptions() *WriterOptions {
	return &WriterOptions{
		BlockSize: MaxBlockSize,
		Mode:      ModeNormal,
	}
}
