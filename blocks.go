package lzf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// appendBlock frames one uncompressed block onto dst and returns the extended
// slice. The block is stored compressed only when the token stream fits in
// len(block)-4 bytes; a compressed block carries 4 extra header bytes, so
// anything larger cannot beat storing the block raw. scratch must have room
// for len(block)-4 bytes.
func appendBlock(dst, block, scratch []byte, mode CompressionMode) ([]byte, error) {
	budget := len(block) - 4
	if budget > 0 {
		n, err := Compress(scratch[:budget], block, mode)
		switch {
		case err == nil:
			dst = append(dst, blockMagic0, blockMagic1, blockTypeCompressed)
			dst = binary.BigEndian.AppendUint16(dst, uint16(n))
			dst = binary.BigEndian.AppendUint16(dst, uint16(len(block)))
			return append(dst, scratch[:n]...), nil
		case !errors.Is(err, ErrOutputTooSmall):
			return dst, err
		}
	}

	dst = append(dst, blockMagic0, blockMagic1, blockTypeUncompressed)
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(block)))

	return append(dst, block...), nil
}

// EncodeBlocks encodes src into the "ZV" block stream format. src is split
// into consecutive chunks of at most blockSize bytes, each emitted as a
// compressed block when that saves space and as a raw block otherwise.
// blockSize must be in 1..MaxBlockSize.
func EncodeBlocks(src []byte, blockSize int, mode CompressionMode) ([]byte, error) {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidParameter, blockSize)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: compression mode %d", ErrInvalidParameter, mode)
	}

	var out []byte
	scratch := make([]byte, blockSize)

	for start := 0; start < len(src); start += blockSize {
		end := start + blockSize
		if end > len(src) {
			end = len(src)
		}

		var err error
		out, err = appendBlock(out, src[start:end], scratch, mode)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// DecodeBlocks decodes a "ZV" block stream produced by EncodeBlocks, a Writer
// or the historical lzf utility. Decoding stops at end of input or at a zero
// byte in magic position (the optional stream terminator).
func DecodeBlocks(src []byte) ([]byte, error) {
	var out []byte
	ip := 0

	for ip < len(src) {
		if src[ip] == 0 {
			break
		}

		if len(src)-ip < rawHeaderSize {
			return nil, ErrInvalidHeader
		}
		if src[ip] != blockMagic0 || src[ip+1] != blockMagic1 {
			return nil, ErrInvalidHeader
		}

		switch t := src[ip+2]; t {
		case blockTypeUncompressed:
			payloadLen := int(binary.BigEndian.Uint16(src[ip+3:]))
			ip += rawHeaderSize
			if len(src)-ip < payloadLen {
				return nil, ErrInvalidData
			}

			out = append(out, src[ip:ip+payloadLen]...)
			ip += payloadLen

		case blockTypeCompressed:
			if len(src)-ip < compHeaderSize {
				return nil, ErrInvalidHeader
			}
			compLen := int(binary.BigEndian.Uint16(src[ip+3:]))
			rawLen := int(binary.BigEndian.Uint16(src[ip+5:]))
			ip += compHeaderSize
			if len(src)-ip < compLen {
				return nil, ErrInvalidData
			}

			block, err := DecompressBytes(src[ip:ip+compLen], rawLen)
			if err != nil {
				return nil, err
			}
			out = append(out, block...)
			ip += compLen

		default:
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownBlockType, t)
		}
	}

	return out, nil
}
