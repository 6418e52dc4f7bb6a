/*
Package chunk implements small immutable text fragments, used as the items
of a text buffer built on a B+ sum-tree.

A chunk holds at most MaxBytes bytes of valid UTF-8. Besides the text it
keeps two bitmaps, one marking the start byte of every character and one
marking every newline, so character and line arithmetic inside a chunk is a
matter of population counts.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package chunk

import (
	"math/bits"
	"unicode/utf8"
)

// MaxBytes is the capacity of a chunk in bytes.
const MaxBytes = 64

// bitmap flags byte positions inside a chunk, bit i standing for byte i.
type bitmap uint64

// Chunk is an immutable fragment of UTF-8 text of at most MaxBytes bytes.
// The zero value is the empty chunk.
type Chunk struct {
	starts   bitmap // character start bytes
	newlines bitmap // '\n' bytes
	n        uint8
	text     [MaxBytes]byte
}

// New creates a chunk from a string.
func New(s string) (Chunk, error) {
	if len(s) > MaxBytes {
		return Chunk{}, ErrChunkTooLarge
	}
	if !utf8.ValidString(s) {
		return Chunk{}, ErrInvalidUTF8
	}
	var c Chunk
	c.n = uint8(copy(c.text[:], s))
	c.index()
	return c, nil
}

// NewBytes creates a chunk from a byte slice, which is copied. The slice
// has to start and end on character boundaries.
func NewBytes(b []byte) (Chunk, error) {
	if len(b) > MaxBytes {
		return Chunk{}, ErrChunkTooLarge
	}
	if !utf8.Valid(b) {
		return Chunk{}, ErrInvalidUTF8
	}
	var c Chunk
	c.n = uint8(copy(c.text[:], b))
	c.index()
	return c, nil
}

func (c *Chunk) index() {
	c.starts, c.newlines = 0, 0
	for i := 0; i < int(c.n); i++ {
		if !utf8.RuneStart(c.text[i]) {
			continue
		}
		c.starts |= 1 << uint(i)
		if c.text[i] == '\n' {
			c.newlines |= 1 << uint(i)
		}
	}
}

// Len returns the length of the chunk in bytes.
func (c Chunk) Len() int { return int(c.n) }

// IsEmpty is true for a chunk without text.
func (c Chunk) IsEmpty() bool { return c.n == 0 }

func (c Chunk) String() string { return string(c.text[:c.n]) }

// Bytes returns a copy of the chunk's text.
func (c Chunk) Bytes() []byte {
	return append([]byte(nil), c.text[:c.n]...)
}

// IsCharBoundary is true if offset is 0, Len() or the start of a character.
func (c Chunk) IsCharBoundary(offset int) bool {
	switch {
	case offset < 0 || offset > c.Len():
		return false
	case offset == c.Len():
		return true
	}
	return c.starts&(1<<uint(offset)) != 0
}

// Split cuts a chunk into [0,at) and [at,Len()).
func (c Chunk) Split(at int) (Chunk, Chunk, error) {
	if at < 0 || at > c.Len() {
		return Chunk{}, Chunk{}, ErrIndexOutOfBounds
	}
	if !c.IsCharBoundary(at) {
		return Chunk{}, Chunk{}, ErrNotCharBoundary
	}
	var left, right Chunk
	left.n = uint8(copy(left.text[:], c.text[:at]))
	right.n = uint8(copy(right.text[:], c.text[at:c.n]))
	left.starts, left.newlines = c.starts&prefix(at), c.newlines&prefix(at)
	right.starts, right.newlines = c.starts>>uint(at), c.newlines>>uint(at)
	return left, right, nil
}

// Slice returns the sub-chunk [from,to).
func (c Chunk) Slice(from, to int) (Chunk, error) {
	if from < 0 || to < from || to > c.Len() {
		return Chunk{}, ErrIndexOutOfBounds
	}
	_, rest, err := c.Split(from)
	if err != nil {
		return Chunk{}, err
	}
	mid, _, err := rest.Split(to - from)
	return mid, err
}

// Join appends other to c. It reports false, and returns c unchanged, if
// the result would not fit into a chunk.
func (c Chunk) Join(other Chunk) (Chunk, bool) {
	total := c.Len() + other.Len()
	if total > MaxBytes {
		return c, false
	}
	out := c
	copy(out.text[c.n:], other.text[:other.n])
	out.starts |= other.starts << uint(c.n)
	out.newlines |= other.newlines << uint(c.n)
	out.n = uint8(total)
	return out, true
}

// CharsBefore counts the characters starting before byte offset.
func (c Chunk) CharsBefore(offset int) int {
	return bits.OnesCount64(uint64(c.starts & prefix(offset)))
}

// LinesBefore counts the newlines before byte offset.
func (c Chunk) LinesBefore(offset int) int {
	return bits.OnesCount64(uint64(c.newlines & prefix(offset)))
}

// NewlineEnd returns the byte offset just behind the k-th newline of the
// chunk (k starting at 0), or false if the chunk has no more than k newlines.
func (c Chunk) NewlineEnd(k int) (int, bool) {
	nl := c.newlines
	for ; nl != 0; k-- {
		pos := bits.TrailingZeros64(uint64(nl))
		if k == 0 {
			return pos + 1, true
		}
		nl &^= 1 << uint(pos)
	}
	return 0, false
}

// CharOffset returns the byte offset of the k-th character of the chunk,
// or Len() if the chunk has exactly k characters.
func (c Chunk) CharOffset(k int) (int, bool) {
	st := c.starts
	for ; st != 0; k-- {
		pos := bits.TrailingZeros64(uint64(st))
		if k == 0 {
			return pos, true
		}
		st &^= 1 << uint(pos)
	}
	if k == 0 {
		return c.Len(), true
	}
	return 0, false
}

func prefix(offset int) bitmap {
	switch {
	case offset <= 0:
		return 0
	case offset >= MaxBytes:
		return ^bitmap(0)
	}
	return 1<<uint(offset) - 1
}
