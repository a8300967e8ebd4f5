package lzf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader decodes a "ZV" block stream from the underlying io.Reader. Blocks
// are pulled and decompressed lazily, one at a time; Read serves decoded
// bytes in whatever chunk sizes the caller asks for. Reader is not safe for
// concurrent use.
type Reader struct {
	r        io.Reader
	inBuf    []byte // current block's compressed payload
	outBuf   []byte // current block's decoded bytes
	outPos   int
	finished bool
	hdr      [compHeaderSize]byte
}

// NewReader returns a Reader decoding the block stream from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read fills p with decoded bytes, loading the next block once the current
// one is drained. At the stream terminator or a clean end of input it returns
// 0, io.EOF. Bytes already copied into p are reported even when loading a
// later block fails.
func (zr *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if zr.outPos < len(zr.outBuf) {
			c := copy(p[n:], zr.outBuf[zr.outPos:])
			zr.outPos += c
			n += c
			continue
		}

		ok, err := zr.loadBlock()
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}
	}

	if n == 0 && len(p) > 0 && zr.finished {
		return 0, io.EOF
	}

	return n, nil
}

// loadBlock reads and decodes the next block. It reports false without error
// at end of input or at a zero byte in magic position.
func (zr *Reader) loadBlock() (bool, error) {
	if zr.finished {
		return false, nil
	}

	if _, err := io.ReadFull(zr.r, zr.hdr[:1]); err != nil {
		if err == io.EOF {
			zr.finished = true
			return false, nil
		}
		return false, err
	}
	if zr.hdr[0] == 0 {
		zr.finished = true
		return false, nil
	}

	if _, err := io.ReadFull(zr.r, zr.hdr[1:rawHeaderSize]); err != nil {
		return false, err
	}
	if zr.hdr[0] != blockMagic0 || zr.hdr[1] != blockMagic1 {
		return false, ErrInvalidHeader
	}

	switch t := zr.hdr[2]; t {
	case blockTypeUncompressed:
		rawLen := int(binary.BigEndian.Uint16(zr.hdr[3:5]))
		zr.outBuf = grow(zr.outBuf, rawLen)
		if _, err := io.ReadFull(zr.r, zr.outBuf); err != nil {
			return false, err
		}
		zr.outPos = 0
		return true, nil

	case blockTypeCompressed:
		compLen := int(binary.BigEndian.Uint16(zr.hdr[3:5]))
		if _, err := io.ReadFull(zr.r, zr.hdr[5:7]); err != nil {
			return false, err
		}
		rawLen := int(binary.BigEndian.Uint16(zr.hdr[5:7]))

		zr.inBuf = grow(zr.inBuf, compLen)
		if _, err := io.ReadFull(zr.r, zr.inBuf); err != nil {
			return false, err
		}

		zr.outBuf = grow(zr.outBuf, rawLen)
		n, err := Decompress(zr.outBuf, zr.inBuf)
		if err != nil {
			return false, err
		}
		if n != rawLen {
			return false, ErrInvalidData
		}
		zr.outPos = 0
		return true, nil

	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrUnknownBlockType, t)
	}
}

// grow returns b resized to n bytes, reallocating only when the capacity is
// too small.
func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}

	return b[:n]
}
