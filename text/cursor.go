package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/sumtree/btree"
	"github.com/npillmayer/sumtree/chunk"
)

// CharOffset returns the byte position of the character with index n
// (counting from 0). n may be the number of characters in the text, which
// maps to Len().
func (txt Text) CharOffset(n uint64) (uint64, error) {
	chars := txt.Summary().Chars
	switch {
	case n > chars:
		return 0, fmt.Errorf("%w: character %d of %d", ErrIndexOutOfBounds, n, chars)
	case n == chars:
		return txt.Len(), nil
	}
	dim := btree.Dimension[chunk.Summary, uint64](chunk.CharDimension{})
	index, before, err := btree.FindBySummary(txt.tree, dim, n)
	if err != nil {
		return 0, err
	}
	c, err := txt.tree.At(index)
	if err != nil {
		return 0, err
	}
	off, ok := c.CharOffset(int(n - before))
	if !ok {
		return 0, fmt.Errorf("%w: character %d not found in chunk %d", btree.ErrInvariantViolation, n, index)
	}
	prefix, err := txt.tree.PrefixSummary(index)
	if err != nil {
		return 0, err
	}
	return prefix.Bytes + uint64(off), nil
}

// CharCount returns the number of characters before byte position pos,
// which has to be a character boundary.
func (txt Text) CharCount(pos uint64) (uint64, error) {
	index, offset, err := txt.locate(pos)
	if err != nil {
		return 0, err
	}
	prefix, err := txt.tree.PrefixSummary(index)
	if err != nil {
		return 0, err
	}
	if offset == 0 {
		return prefix.Chars, nil
	}
	c, err := txt.tree.At(index)
	if err != nil {
		return 0, err
	}
	return prefix.Chars + uint64(c.CharsBefore(offset)), nil
}

// CharCursor moves through a text character by character.
//
// The cursor is bound to one version of a text. Movement is in character
// steps, while addressing inside the tree uses byte positions.
type CharCursor struct {
	txt     Text
	chars   uint64
	byteOff uint64
}

// CharCursor creates a cursor at the start of the text.
func (txt Text) CharCursor() *CharCursor {
	return &CharCursor{txt: txt}
}

// Pos returns the cursor position as a character index and a byte position.
func (cc *CharCursor) Pos() (chars uint64, bytes uint64) {
	return cc.chars, cc.byteOff
}

// SeekChars moves the cursor in front of character n.
func (cc *CharCursor) SeekChars(n uint64) error {
	pos, err := cc.txt.CharOffset(n)
	if err != nil {
		return err
	}
	cc.chars, cc.byteOff = n, pos
	return nil
}

// Next returns the character at the cursor position and advances the cursor
// by one character. At the end of the text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc.byteOff >= cc.txt.Len() {
		return 0, false
	}
	_, c, off, err := cc.txt.chunkAt(cc.byteOff)
	if err != nil {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.String()[off:])
	cc.byteOff += uint64(size)
	cc.chars++
	return r, true
}

// Prev returns the character before the cursor position and moves the
// cursor back by one character. At the start of the text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc.byteOff == 0 {
		return 0, false
	}
	_, c, off, err := cc.txt.chunkAt(cc.byteOff - 1)
	if err != nil {
		return 0, false
	}
	s := c.String()[:off+1]
	r, size := utf8.DecodeLastRuneInString(s)
	cc.byteOff -= uint64(size)
	cc.chars--
	return r, true
}
