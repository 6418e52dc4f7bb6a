package text

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Span is a byte range [Pos, Pos+Len) of a text.
type Span struct {
	Pos uint64
	Len uint64
}

// Words finds the words in the byte range [from,to) of a text. Words are
// runs of characters which are not white space.
func (txt Text) Words(from, to uint64) ([]Span, error) {
	if to < from {
		return nil, fmt.Errorf("%w: range [%d,%d)", ErrIndexOutOfBounds, from, to)
	}
	content, err := txt.Substr(from, to-from)
	if err != nil {
		return nil, err
	}
	return findWordSpans(content, from), nil
}

func findWordSpans(s string, base uint64) []Span {
	spans := make([]Span, 0, 8)
	start := -1
	for pos, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, Span{Pos: base + uint64(start), Len: uint64(pos - start)})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = pos
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Pos: base + uint64(start), Len: uint64(len(s) - start)})
	}
	return spans
}

// WordCount counts the words of the whole text.
func (txt Text) WordCount() int {
	// inWord carries over chunk borders
	count, inWord := 0, false
	for _, c := range txt.Chunks() {
		s := c.String()
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			s = s[size:]
			if unicode.IsSpace(r) {
				inWord = false
			} else if !inWord {
				inWord = true
				count++
			}
		}
	}
	return count
}
