/*
Package lzf implements LZF compression and decompression, compatible with
liblzf's raw token format and the lzf utility's "ZV" block stream.

Raw format: a sequence of tokens. A control byte 0..31 starts a literal run of
control+1 verbatim bytes. A control byte >= 32 is a back-reference: the top 3
bits hold length-2 (value 7 adds a continuation byte holding length-2-7), the
low 5 bits plus the next byte form a 13-bit backward offset (0 = previous
byte). Matches span 3..264 bytes within an 8191-byte window; self-overlapping
copies expand repeated patterns.

Framed format: blocks of "ZV" magic + type byte. Type 0 stores a 16-bit
big-endian length and raw bytes; type 1 stores 16-bit compressed and
uncompressed lengths and a token stream. Blocks whose compressed form saves no
space are stored raw. An optional single zero byte terminates the stream.

Use Compress/Decompress for raw token streams on caller-provided buffers, with
MaxCompressedSize for capacity planning.
Use CompressBytes/DecompressBytes for allocating whole-buffer variants.
Use EncodeBlocks/DecodeBlocks for whole-buffer framed streams.
Use NewWriter/NewReader to produce or consume framed streams incrementally
over any io.Writer/io.Reader.
Use ModeBest for a slower, more exhaustive match search.

# Examples

Raw round trip with a caller-managed buffer:

	buf := make([]byte, lzf.MaxCompressedSize(len(data)))
	n, err := lzf.Compress(buf, data, lzf.ModeNormal)
	if err != nil {
		return err
	}
	out, err := lzf.DecompressBytes(buf[:n], len(data))
	if err != nil {
		return err
	}
	// out equals data

Framed round trip:

	framed, err := lzf.EncodeBlocks(data, 4096, lzf.ModeNormal)
	if err != nil {
		return err
	}
	out, err := lzf.DecodeBlocks(framed)

Streaming compression to a file:

	zw, err := lzf.NewWriter(f, nil)
	if err != nil {
		return err
	}
	defer zw.Close() // best-effort finalization on early returns
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

Streaming decompression:

	zr := lzf.NewReader(f)
	out, err := io.ReadAll(zr)
*/
package lzf
