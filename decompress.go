package lzf

// Decompress decodes a raw LZF token stream from src into dst and returns the
// number of bytes written. It fails with ErrInvalidData on a malformed token
// stream (including a back-reference that points before the start of output)
// and ErrOutputTooSmall when a back-reference copy would exceed dst.
func Decompress(dst, src []byte) (int, error) {
	var ip, op int

	for ip < len(src) {
		ctrl := int(src[ip])
		ip++

		// Control byte < 32 is a literal run of ctrl+1 verbatim bytes.
		if ctrl < 32 {
			length := ctrl + 1
			if ip+length > len(src) || op+length > len(dst) {
				return 0, ErrInvalidData
			}

			copy(dst[op:op+length], src[ip:ip+length])
			ip += length
			op += length
			continue
		}

		// Back-reference: top 3 bits hold length-2 (7 = continuation byte
		// follows), low 5 bits plus the next byte form the 13-bit offset.
		length := ctrl >> 5
		offHi := (ctrl & 0x1f) << 8
		if length == 7 {
			if ip >= len(src) {
				return 0, ErrInvalidData
			}
			length += int(src[ip])
			ip++
		}

		if ip >= len(src) {
			return 0, ErrInvalidData
		}
		off := offHi | int(src[ip])
		ip++

		copyLen := length + 2
		if op+copyLen > len(dst) {
			return 0, ErrOutputTooSmall
		}
		if off >= op {
			return 0, ErrInvalidData
		}

		ref := op - off - 1
		if copyLen <= 8 || ref+copyLen > op {
			// Short or overlapping copy: byte-by-byte so each written byte is
			// visible to the next read. copy() does not replicate patterns.
			for i := 0; i < copyLen; i++ {
				dst[op+i] = dst[ref+i]
			}
		} else {
			copy(dst[op:op+copyLen], dst[ref:ref+copyLen])
		}
		op += copyLen
	}

	return op, nil
}

// DecompressBytes decodes a raw LZF token stream into a new buffer of exactly
// outLen bytes. It fails with ErrInvalidData if the stream decodes to a
// different length.
func DecompressBytes(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrInvalidParameter
	}

	dst := make([]byte, outLen)
	n, err := Decompress(dst, src)
	if err != nil {
		return nil, err
	}
	if n != outLen {
		return nil, ErrInvalidData
	}

	return dst, nil
}
