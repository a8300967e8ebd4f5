package lzf

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// Writer encodes data written to it into a "ZV" block stream on the
// underlying io.Writer. Bytes are buffered until a full block accumulates, so
// the framed output depends only on the total byte sequence, not on how it
// was split across Write calls. Writer is not safe for concurrent use.
type Writer struct {
	w         io.Writer
	blockSize int
	mode      CompressionMode
	eofMarker bool
	buf       []byte // pending partial block
	scratch   []byte // per-block compression buffer
	frame     []byte // reusable framed block
	closed    bool
}

// NewWriter returns a Writer framing blocks onto w. Options nil means
// DefaultWriterOptions(). Fails with ErrInvalidParameter for a block size
// outside 1..MaxBlockSize or an unknown compression mode.
func NewWriter(w io.Writer, opts *WriterOptions) (*Writer, error) {
	if opts == nil {
		opts = DefaultWriterOptions()
	}
	if opts.BlockSize < 1 || opts.BlockSize > MaxBlockSize {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidParameter, opts.BlockSize)
	}
	if !opts.Mode.valid() {
		return nil, fmt.Errorf("%w: compression mode %d", ErrInvalidParameter, opts.Mode)
	}

	return &Writer{
		w:         w,
		blockSize: opts.BlockSize,
		mode:      opts.Mode,
		eofMarker: opts.EOFMarker,
		buf:       make([]byte, 0, opts.BlockSize),
		scratch:   make([]byte, opts.BlockSize),
	}, nil
}

// Write buffers p and emits a framed block for every full blockSize bytes
// accumulated. Bytes reported as written but not yet framed remain buffered
// until the next Write, Flush or Close.
func (zw *Writer) Write(p []byte) (int, error) {
	if zw.closed {
		return 0, ErrWriterClosed
	}

	n := 0
	if len(zw.buf) > 0 {
		take := zw.blockSize - len(zw.buf)
		if take > len(p) {
			take = len(p)
		}
		zw.buf = append(zw.buf, p[:take]...)
		n += take

		if len(zw.buf) == zw.blockSize {
			if err := zw.writeBlock(zw.buf); err != nil {
				return n, err
			}
			zw.buf = zw.buf[:0]
		}
	}

	// Full blocks straight from p, no extra buffering.
	for len(p)-n >= zw.blockSize {
		if err := zw.writeBlock(p[n : n+zw.blockSize]); err != nil {
			return n, err
		}
		n += zw.blockSize
	}

	zw.buf = append(zw.buf, p[n:]...)

	return len(p), nil
}

// Flush frames any buffered partial block and flushes the underlying writer
// when it implements Flush() error. A mid-stream Flush emits a short block,
// so the framed output differs from an unflushed stream.
func (zw *Writer) Flush() error {
	if zw.closed {
		return ErrWriterClosed
	}
	if err := zw.flushPending(); err != nil {
		return err
	}
	if f, ok := zw.w.(flusher); ok {
		return f.Flush()
	}

	return nil
}

// Close frames any pending partial block, appends the zero terminator byte
// when EOFMarker is set, flushes the underlying writer and marks the stream
// finished. Only Close guarantees all buffered data reaches the sink.
//
// Close is idempotent: later calls return nil. Deferring Close right after
// NewWriter gives best-effort finalization on every exit path; check the
// explicit call's error on the success path when the data matters.
func (zw *Writer) Close() error {
	if zw.closed {
		return nil
	}
	zw.closed = true

	if err := zw.flushPending(); err != nil {
		return err
	}
	if zw.eofMarker {
		if _, err := zw.w.Write([]byte{0}); err != nil {
			return err
		}
	}
	if f, ok := zw.w.(flusher); ok {
		return f.Flush()
	}

	return nil
}

func (zw *Writer) flushPending() error {
	if len(zw.buf) == 0 {
		return nil
	}
	if err := zw.writeBlock(zw.buf); err != nil {
		return err
	}
	zw.buf = zw.buf[:0]

	return nil
}

func (zw *Writer) writeBlock(block []byte) error {
	frame, err := appendBlock(zw.frame[:0], block, zw.scratch, zw.mode)
	if err != nil {
		return err
	}
	zw.frame = frame

	_, err = zw.w.Write(frame)

	return err
}
