package chunk

import (
	"math/bits"
	"unicode/utf8"

	"github.com/npillmayer/sumtree/btree"
)

// Summary is the tree summary of a run of text.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64 // newline count
}

// Summary makes Chunk a btree.SummarizedItem.
func (c Chunk) Summary() Summary {
	return Summary{
		Bytes: uint64(c.n),
		Chars: uint64(bits.OnesCount64(uint64(c.starts))),
		Lines: uint64(bits.OnesCount64(uint64(c.newlines))),
	}
}

// Monoid adds up text summaries.
type Monoid struct{}

func (Monoid) Zero() Summary { return Summary{} }

func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
	}
}

var _ btree.SummaryMonoid[Summary] = Monoid{}

// ByteDimension seeks text by byte offset.
type ByteDimension struct{}

func (ByteDimension) Zero() uint64                          { return 0 }
func (ByteDimension) Add(acc uint64, s Summary) uint64      { return acc + s.Bytes }
func (ByteDimension) Compare(acc uint64, target uint64) int { return btree.CompareUint64(acc, target) }

// CharDimension seeks text by character offset.
type CharDimension struct{}

func (CharDimension) Zero() uint64                          { return 0 }
func (CharDimension) Add(acc uint64, s Summary) uint64      { return acc + s.Chars }
func (CharDimension) Compare(acc uint64, target uint64) int { return btree.CompareUint64(acc, target) }

// LineDimension seeks text by newline count. Seeking target k finds the
// chunk holding the k-th newline (counting from 0).
type LineDimension struct{}

func (LineDimension) Zero() uint64                          { return 0 }
func (LineDimension) Add(acc uint64, s Summary) uint64      { return acc + s.Lines }
func (LineDimension) Compare(acc uint64, target uint64) int { return btree.CompareUint64(acc, target) }

var (
	_ btree.Dimension[Summary, uint64] = ByteDimension{}
	_ btree.Dimension[Summary, uint64] = CharDimension{}
	_ btree.Dimension[Summary, uint64] = LineDimension{}
)

// Split cuts text into chunks of at most MaxBytes bytes, cutting only at
// character boundaries. Empty text results in no chunks.
func Split(s string) ([]Chunk, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	chunks := make([]Chunk, 0, (len(s)+MaxBytes-1)/MaxBytes)
	for len(s) > 0 {
		cut := min(len(s), MaxBytes)
		for cut < len(s) && !utf8.RuneStart(s[cut]) {
			cut--
		}
		c, err := New(s[:cut])
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
		s = s[cut:]
	}
	return chunks, nil
}
