package lzf

import "fmt"

// Hash table parameters shared by both modes.
const (
	hashLog  = 16
	hashSize = 1 << hashLog
)

// hash3 is the multiplicative hash over the 3-byte prefix at src[i] used by
// normal mode.
func hash3(src []byte, i int) uint32 {
	v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
	return (v * 0x1e35a7bd >> (32 - hashLog - 8)) & (hashSize - 1)
}

// hashBest3 is the shift-xor hash over the 3-byte prefix at src[i] used by
// best mode.
func hashBest3(src []byte, i int) uint32 {
	return (uint32(src[i])<<6 ^ uint32(src[i+1])<<3 ^ uint32(src[i+2])) & (hashSize - 1)
}

// emitLiterals appends src[start:end] as literal runs of at most MaxLiteral
// bytes each, returning the new output position.
func emitLiterals(dst, src []byte, op, start, end int) (int, error) {
	for start < end {
		chunk := end - start
		if chunk > MaxLiteral {
			chunk = MaxLiteral
		}
		if op+1+chunk > len(dst) {
			return op, ErrOutputTooSmall
		}

		dst[op] = byte(chunk - 1)
		op++
		copy(dst[op:op+chunk], src[start:start+chunk])
		op += chunk
		start += chunk
	}

	return op, nil
}

// emitBackref appends a back-reference token. The length field stores
// length-2; values >= 7 spill into a continuation byte.
func emitBackref(dst []byte, op, off, length int) (int, error) {
	l := length - 2
	if l < 7 {
		if op+2 > len(dst) {
			return op, ErrOutputTooSmall
		}
		dst[op] = byte(l)<<5 | byte(off>>8)
		op++
	} else {
		if op+3 > len(dst) {
			return op, ErrOutputTooSmall
		}
		dst[op] = 7<<5 | byte(off>>8)
		dst[op+1] = byte(l - 7)
		op += 2
	}

	dst[op] = byte(off)

	return op + 1, nil
}

// compressNormal is the greedy single-candidate encoder. The hash table maps
// a 3-byte prefix hash to the most recent position+1 with that hash (0 = empty).
func compressNormal(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var table [hashSize]uint32
	var op, anchor, pos int
	var err error

	for pos+2 < len(src) {
		h := hash3(src, pos)
		prev := int(table[h])
		table[h] = uint32(pos + 1)

		if prev != 0 {
			cand := prev - 1
			off := pos - cand - 1
			if cand < pos && off < MaxOffset &&
				src[cand] == src[pos] && src[cand+1] == src[pos+1] && src[cand+2] == src[pos+2] {
				op, err = emitLiterals(dst, src, op, anchor, pos)
				if err != nil {
					return 0, err
				}

				maxLen := len(src) - pos
				if maxLen > MaxMatch {
					maxLen = MaxMatch
				}
				length := 3
				for length < maxLen && src[cand+length] == src[pos+length] {
					length++
				}

				op, err = emitBackref(dst, op, off, length)
				if err != nil {
					return 0, err
				}

				// Refresh hash entries for the interior of the consumed match
				// so the next search sees recent candidates.
				end := pos + length
				for scan := pos + 1; scan+2 < end; scan++ {
					table[hash3(src, scan)] = uint32(scan + 1)
				}

				pos = end
				anchor = pos
				continue
			}
		}

		pos++
	}

	op, err = emitLiterals(dst, src, op, anchor, len(src))
	if err != nil {
		return 0, err
	}

	return op, nil
}

// compressBest is the exhaustive chained encoder. first maps a hash to the
// most recent position+1; prev links each position (mod MaxOffset) back to
// the previous position with the same hash by distance.
func compressBest(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var first [hashSize]uint32
	var prev [MaxOffset]uint16
	var op, anchor, pos int
	var err error

	for pos+2 < len(src) {
		h := hashBest3(src, pos)
		head := int(first[h])
		slot := pos & (MaxOffset - 1)

		if head == 0 {
			prev[slot] = 0
		} else {
			d := pos - (head - 1)
			if d > 0xffff {
				d = 0xffff
			}
			prev[slot] = uint16(d)
		}
		first[h] = uint32(pos + 1)

		var bestLen, bestPos int
		maxLen := len(src) - pos
		if maxLen > MaxMatch {
			maxLen = MaxMatch
		}
		lower := pos - MaxOffset
		if lower < 0 {
			lower = 0
		}

		if head != 0 {
			p := head - 1
			c0, c1, c2 := src[pos], src[pos+1], src[pos+2]

			for p >= lower {
				if src[p] == c0 && src[p+1] == c1 && src[p+2] == c2 &&
					(bestLen == 0 || src[p+bestLen] == src[pos+bestLen]) {
					l := 3
					for l < maxLen && src[p+l] == src[pos+l] {
						l++
					}

					if l >= bestLen {
						bestLen = l
						bestPos = p
						if l == maxLen {
							break
						}
					}
				}

				d := int(prev[p&(MaxOffset-1)])
				if d == 0 || p < d {
					break
				}
				p -= d
			}
		}

		if bestLen >= 3 {
			op, err = emitLiterals(dst, src, op, anchor, pos)
			if err != nil {
				return 0, err
			}

			op, err = emitBackref(dst, op, pos-bestPos-1, bestLen)
			if err != nil {
				return 0, err
			}

			end := pos + bestLen
			for scan := pos + 1; scan+2 < end; scan++ {
				hh := hashBest3(src, scan)
				s := scan & (MaxOffset - 1)
				hd := int(first[hh])

				if hd == 0 {
					prev[s] = 0
				} else {
					d := scan - (hd - 1)
					if d > 0xffff {
						d = 0xffff
					}
					prev[s] = uint16(d)
				}
				first[hh] = uint32(scan + 1)
			}

			pos = end
			anchor = pos
		} else {
			pos++
		}
	}

	op, err = emitLiterals(dst, src, op, anchor, len(src))
	if err != nil {
		return 0, err
	}

	return op, nil
}

// Compress encodes src into dst as a raw LZF token stream and returns the
// number of bytes written. It fails with ErrOutputTooSmall when dst cannot
// hold the encoded stream; size dst with MaxCompressedSize for a guaranteed
// fit. Compression never fails for any input content, only for capacity.
func Compress(dst, src []byte, mode CompressionMode) (int, error) {
	switch mode {
	case ModeNormal:
		return compressNormal(dst, src)
	case ModeBest:
		return compressBest(dst, src)
	default:
		return 0, fmt.Errorf("%w: compression mode %d", ErrInvalidParameter, mode)
	}
}

// CompressBytes encodes src into a freshly allocated buffer.
func CompressBytes(src []byte, mode CompressionMode) ([]byte, error) {
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(dst, src, mode)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
