// Package record: Writer/Reader implementation.
package record

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrCorruptRecord indicates a structurally invalid record stream
// (truncated varint, short read, oversized length prefix).
var ErrCorruptRecord = errors.New("record: corrupt record stream")

// maxStringLen bounds a single length-prefixed string; guards Reader against
// allocating from a corrupt prefix.
const maxStringLen = 1 << 26

// Writer encodes records onto an io.Writer. The first write error sticks and
// is returned by Err and every subsequent Flush.
type Writer struct {
	w   *bufio.Writer
	buf [binary.MaxVarintLen64]byte
	err error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Uvarint writes an unsigned varint (counts, indices).
func (w *Writer) Uvarint(v uint64) {
	if w.err != nil {
		return
	}
	n := binary.PutUvarint(w.buf[:], v)
	_, w.err = w.w.Write(w.buf[:n])
}

// Float64 writes a fixed-width little-endian float64 (weights).
func (w *Writer) Float64(v float64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	_, w.err = w.w.Write(b[:])
}

// String writes a varint length prefix followed by the raw bytes.
func (w *Writer) String(s string) {
	w.Uvarint(uint64(len(s)))
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Strings writes a length-prefixed string collection.
func (w *Writer) Strings(ss []string) {
	w.Uvarint(uint64(len(ss)))
	for _, s := range ss {
		w.String(s)
	}
}

// Float64s writes a length-prefixed weight collection.
func (w *Writer) Float64s(vs []float64) {
	w.Uvarint(uint64(len(vs)))
	for _, v := range vs {
		w.Float64(v)
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Flush drains the buffer and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Reader decodes records from an io.Reader. The first error sticks; callers
// chain reads and check Err once.
type Reader struct {
	r   *bufio.Reader
	err error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Uvarint reads an unsigned varint.
func (r *Reader) Uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		r.err = errors.Wrap(ErrCorruptRecord, err.Error())
		return 0
	}
	return v
}

// Float64 reads a fixed-width little-endian float64.
func (r *Reader) Float64() float64 {
	if r.err != nil {
		return 0
	}
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		r.err = errors.Wrap(ErrCorruptRecord, err.Error())
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:]))
}

// String reads a length-prefixed string.
func (r *Reader) String() string {
	n := r.Uvarint()
	if r.err != nil {
		return ""
	}
	if n > maxStringLen {
		r.err = errors.Wrapf(ErrCorruptRecord, "string length %d exceeds limit", n)
		return ""
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		r.err = errors.Wrap(ErrCorruptRecord, err.Error())
		return ""
	}
	return string(b)
}

// Strings reads a length-prefixed string collection.
func (r *Reader) Strings() []string {
	n := r.Uvarint()
	if r.err != nil {
		return nil
	}
	ss := make([]string, 0, min(n, 1024))
	for i := uint64(0); i < n; i++ {
		ss = append(ss, r.String())
		if r.err != nil {
			return nil
		}
	}
	return ss
}

// Float64s reads a length-prefixed weight collection.
func (r *Reader) Float64s() []float64 {
	n := r.Uvarint()
	if r.err != nil {
		return nil
	}
	vs := make([]float64, 0, min(n, 1024))
	for i := uint64(0); i < n; i++ {
		vs = append(vs, r.Float64())
		if r.err != nil {
			return nil
		}
	}
	return vs
}

// Err returns the first read error, if any.
func (r *Reader) Err() error { return r.err }
