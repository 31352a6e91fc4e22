// Package container implements the little-endian, length-prefixed binary
// encoding used for the compressed-file format: fixed field order, no magic
// number or version byte, length-prefixed lists and strings.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is returned when a Reader method needs more bytes than
// remain in the buffer.
var ErrShortBuffer = errors.New("container: short buffer")

// Reader sequentially decodes fields from a byte slice, bounds-checking
// every read.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, n, r.Len())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt32 reads a little-endian int32 (used for enum-valued fields).
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadFloat64 reads a little-endian IEEE754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadComplex128 reads a (real, imag) pair of doubles.
func (r *Reader) ReadComplex128() (complex128, error) {
	re, err := r.ReadFloat64()
	if err != nil {
		return 0, err
	}
	im, err := r.ReadFloat64()
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// ReadString reads a uint64-length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads n raw bytes with no length prefix.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Writer sequentially encodes fields into a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteUint32 appends a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint64 appends a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteInt32 appends a little-endian int32 (used for enum-valued fields).
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteFloat64 appends a little-endian IEEE754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteComplex128 appends a (real, imag) pair of doubles.
func (w *Writer) WriteComplex128(z complex128) {
	w.WriteFloat64(real(z))
	w.WriteFloat64(imag(z))
}

// WriteString appends a uint64-length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) {
	w.WriteUint64(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteBytes appends raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}
