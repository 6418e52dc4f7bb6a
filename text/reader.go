package text

import "io"

// Reader returns a reader for the bytes of the text.
func (txt Text) Reader() io.Reader {
	return &textReader{txt: txt}
}

type textReader struct {
	txt    Text
	index  int // current chunk
	offset int // offset in current chunk
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		c, err := tr.txt.tree.At(tr.index)
		if err != nil { // behind last chunk
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		cnt := copy(p[n:], c.String()[tr.offset:])
		n += cnt
		tr.offset += cnt
		if tr.offset == c.Len() {
			tr.index++
			tr.offset = 0
		}
	}
	return n, nil
}
