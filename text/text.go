package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/sumtree/btree"
	"github.com/npillmayer/sumtree/chunk"
	"github.com/zeebo/xxh3"
)

// Tree is the chunk tree underlying a Text.
type Tree = btree.Tree[chunk.Chunk, chunk.Summary]

// Degree is the fanout of chunk trees.
const Degree = 16

func config() btree.Config[chunk.Summary] {
	return btree.Config[chunk.Summary]{Monoid: chunk.Monoid{}, Degree: Degree}
}

// Text is an immutable UTF-8 text. The zero value is the empty text.
type Text struct {
	tree *Tree // may be nil
}

// FromString creates a text from a string, which must be valid UTF-8.
func FromString(s string) (Text, error) {
	chunks, err := chunk.Split(s)
	if err != nil {
		return Text{}, err
	}
	return fromChunks(chunks)
}

func fromChunks(chunks []chunk.Chunk) (Text, error) {
	tree, err := btree.FromItems(config(), chunks...)
	if err != nil {
		return Text{}, err
	}
	return Text{tree: tree}, nil
}

func (txt Text) String() string {
	var sb strings.Builder
	sb.Grow(int(txt.Len()))
	txt.tree.ForEachItem(func(c chunk.Chunk) bool {
		sb.WriteString(c.String())
		return true
	})
	return sb.String()
}

// Len is the length of the text in bytes.
func (txt Text) Len() uint64 {
	return txt.Summary().Bytes
}

// IsEmpty is true for a text of length 0.
func (txt Text) IsEmpty() bool {
	return txt.tree.IsEmpty()
}

// Summary returns byte, character and newline counts of the text.
func (txt Text) Summary() chunk.Summary {
	if txt.tree.IsEmpty() {
		return chunk.Summary{}
	}
	return txt.tree.Summary()
}

// LineCount is the number of newlines plus one.
func (txt Text) LineCount() uint64 {
	return txt.Summary().Lines + 1
}

// Tree returns the chunk tree of the text, creating an empty one for the
// zero text.
func (txt Text) Tree() *Tree {
	if txt.tree != nil {
		return txt.tree
	}
	tree, err := btree.New[chunk.Chunk](config())
	if err != nil {
		panic(err) // static configuration
	}
	return tree
}

// Chunks returns the chunks of the text in order.
func (txt Text) Chunks() []chunk.Chunk {
	return txt.tree.Items()
}

// Fingerprint hashes the content of the text. Texts with equal content have
// equal fingerprints, independent of their chunking.
func (txt Text) Fingerprint() uint64 {
	h := xxh3.New()
	txt.tree.ForEachItem(func(c chunk.Chunk) bool {
		_, _ = h.WriteString(c.String())
		return true
	})
	return h.Sum64()
}

// locate finds the chunk containing byte position pos. It returns the chunk
// index and the offset of pos inside the chunk. pos == Len() is located
// behind the last chunk, at index Len() and offset 0.
func (txt Text) locate(pos uint64) (int, int, error) {
	size := txt.Len()
	if pos > size {
		return 0, 0, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, pos, size)
	}
	if pos == size {
		return txt.tree.Len(), 0, nil
	}
	index, c, offset, err := txt.chunkAt(pos)
	if err != nil {
		return 0, 0, err
	}
	if !c.IsCharBoundary(offset) {
		return 0, 0, fmt.Errorf("%w: position %d", ErrNotCharBoundary, pos)
	}
	return index, offset, nil
}

// chunkAt returns the chunk containing byte position pos < Len(), together
// with its index and the offset of pos inside it.
func (txt Text) chunkAt(pos uint64) (int, chunk.Chunk, int, error) {
	index, start, err := btree.FindBySummary(txt.tree, btree.Dimension[chunk.Summary, uint64](chunk.ByteDimension{}), pos)
	if err != nil {
		return 0, chunk.Chunk{}, 0, fmt.Errorf("%w: position %d", ErrIndexOutOfBounds, pos)
	}
	c, err := txt.tree.At(index)
	if err != nil {
		return 0, chunk.Chunk{}, 0, err
	}
	return index, c, int(pos - start), nil
}

// Split cuts a text into [0,pos) and [pos,Len()).
func (txt Text) Split(pos uint64) (Text, Text, error) {
	index, offset, err := txt.locate(pos)
	if err != nil {
		return txt, txt, err
	}
	tree := txt.Tree()
	left, right, err := tree.SplitAt(index)
	if err != nil {
		return txt, txt, err
	}
	if offset == 0 {
		return Text{tree: left}, Text{tree: right}, nil
	}
	c, err := right.At(0)
	if err != nil {
		return txt, txt, err
	}
	head, tail, err := c.Split(offset)
	if err != nil {
		return txt, txt, err
	}
	if left, err = left.Append(head); err != nil {
		return txt, txt, err
	}
	if right, err = right.DeleteAt(0); err != nil {
		return txt, txt, err
	}
	if right, err = right.InsertAt(0, tail); err != nil {
		return txt, txt, err
	}
	return Text{tree: left}, Text{tree: right}, nil
}

// Concat appends other to txt. If the chunks meeting at the seam fit into
// a single chunk, they are joined.
func (txt Text) Concat(other Text) (Text, error) {
	if other.IsEmpty() {
		return txt, nil
	}
	if txt.IsEmpty() {
		return other, nil
	}
	left, right := txt.tree, other.tree
	last, _ := left.Last()
	first, _ := right.First()
	if joined, ok := last.Join(first); ok {
		var err error
		if left, err = left.DeleteAt(left.Len() - 1); err != nil {
			return txt, err
		}
		if right, err = right.DeleteAt(0); err != nil {
			return txt, err
		}
		if left, err = left.Append(joined); err != nil {
			return txt, err
		}
		tracer().Debugf("text: joined seam chunks into %d bytes", joined.Len())
	}
	tree, err := left.Concat(right)
	if err != nil {
		return txt, err
	}
	return Text{tree: tree}, nil
}

// Insert inserts s at byte position pos.
func (txt Text) Insert(pos uint64, s string) (Text, error) {
	ins, err := FromString(s)
	if err != nil {
		return txt, err
	}
	left, right, err := txt.Split(pos)
	if err != nil {
		return txt, err
	}
	if left, err = left.Concat(ins); err != nil {
		return txt, err
	}
	return left.Concat(right)
}

// Delete removes n bytes starting at byte position pos.
func (txt Text) Delete(pos, n uint64) (Text, error) {
	if pos+n > txt.Len() || pos+n < pos {
		return txt, fmt.Errorf("%w: range [%d,+%d), length %d", ErrIndexOutOfBounds, pos, n, txt.Len())
	}
	left, rest, err := txt.Split(pos)
	if err != nil {
		return txt, err
	}
	_, right, err := rest.Split(n)
	if err != nil {
		return txt, err
	}
	return left.Concat(right)
}

// Substr returns n bytes of text starting at byte position pos.
func (txt Text) Substr(pos, n uint64) (string, error) {
	if pos+n > txt.Len() || pos+n < pos {
		return "", fmt.Errorf("%w: range [%d,+%d), length %d", ErrIndexOutOfBounds, pos, n, txt.Len())
	}
	if n == 0 {
		if _, _, err := txt.locate(pos); err != nil {
			return "", err
		}
		return "", nil
	}
	index, offset, err := txt.locate(pos)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(int(n))
	remaining := int(n)
	for i := index; remaining > 0; i++ {
		c, err := txt.tree.At(i)
		if err != nil {
			return "", err
		}
		to := min(c.Len(), offset+remaining)
		if to < c.Len() && !c.IsCharBoundary(to) {
			return "", fmt.Errorf("%w: position %d", ErrNotCharBoundary, pos+n)
		}
		sb.WriteString(c.String()[offset:to])
		remaining -= to - offset
		offset = 0
	}
	return sb.String(), nil
}

// LineStart returns the byte position of the first byte of a line.
func (txt Text) LineStart(line uint64) (uint64, error) {
	if line == 0 {
		return 0, nil
	}
	if line > txt.Summary().Lines {
		return 0, fmt.Errorf("%w: line %d of %d", ErrIndexOutOfBounds, line, txt.LineCount())
	}
	// the line starts behind newline number line-1
	dim := btree.Dimension[chunk.Summary, uint64](chunk.LineDimension{})
	index, before, err := btree.FindBySummary(txt.tree, dim, line-1)
	if err != nil {
		return 0, err
	}
	c, err := txt.tree.At(index)
	if err != nil {
		return 0, err
	}
	end, ok := c.NewlineEnd(int(line - 1 - before))
	if !ok {
		return 0, fmt.Errorf("%w: newline %d not found in chunk %d", btree.ErrInvariantViolation, line-1, index)
	}
	prefix, err := txt.tree.PrefixSummary(index)
	if err != nil {
		return 0, err
	}
	return prefix.Bytes + uint64(end), nil
}

// Line returns the text of a line without its terminating newline.
func (txt Text) Line(line uint64) (string, error) {
	start, err := txt.LineStart(line)
	if err != nil {
		return "", err
	}
	end, err := txt.LineStart(line + 1)
	switch {
	case errors.Is(err, ErrIndexOutOfBounds):
		end = txt.Len()
	case err != nil:
		return "", err
	default:
		end-- // newline
	}
	return txt.Substr(start, end-start)
}
