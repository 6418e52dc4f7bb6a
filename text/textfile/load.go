package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sumtree/text"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Progress is published to subscribers of a Loader after every fragment.
type Progress struct {
	Fragment int   // sequence number of the fragment, starting at 0
	Loaded   int64 // bytes loaded so far
	Total    int64 // file size
}

// Done is true for the final progress message of a load.
func (p Progress) Done() bool {
	return p.Loaded >= p.Total
}

// Loader loads a single text file.
type Loader struct {
	path     string
	info     os.FileInfo
	fragSize int64
	cast     *caster.Caster // broadcasts Progress
}

// fragment is a chunk of file content handed from the reader goroutine to
// the assembling side.
type fragment struct {
	data []byte
	err  error
}

// NewLoader prepares loading a file. fragSize is the recommended number of
// bytes to read at a time; if it is not positive, a size is chosen
// depending on the size of the file.
func NewLoader(path string, fragSize int64) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	if fragSize <= 0 {
		fragSize = defaultFragSize(info.Size())
	}
	return &Loader{
		path:     path,
		info:     info,
		fragSize: max(fragSize, utf8.UTFMax),
		cast:     caster.New(nil),
	}, nil
}

func defaultFragSize(size int64) int64 {
	switch {
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// Size is the size of the file in bytes, as seen when the loader was created.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

// Subscribe returns a channel of Progress messages. The channel is closed
// when the load is finished or ctx is done.
func (l *Loader) Subscribe(ctx context.Context) <-chan Progress {
	out := make(chan Progress, 16)
	sub, ok := l.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			if p, ok := msg.(Progress); ok {
				out <- p
			}
		}
	}()
	return out
}

// Load reads the file and returns its content as a text. Load may be
// called once per loader; subscriptions are closed when it returns.
func (l *Loader) Load(ctx context.Context) (text.Text, error) {
	defer l.cast.Close()
	file, err := os.Open(l.path)
	if err != nil {
		return text.Text{}, err
	}
	defer file.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frags := readFragments(ctx, file, l.fragSize)
	var txt text.Text
	var loaded int64
	n := 0
	for frag := range frags {
		if frag.err != nil {
			return text.Text{}, frag.err
		}
		part, err := text.FromString(string(frag.data))
		if err != nil {
			return text.Text{}, fmt.Errorf("%w: fragment at %d", ErrInvalidUTF8, loaded)
		}
		if txt, err = txt.Concat(part); err != nil {
			return text.Text{}, err
		}
		loaded += int64(len(frag.data))
		tracer().Debugf("textfile: fragment #%d, %d of %d bytes", n, loaded, l.Size())
		l.cast.Pub(Progress{Fragment: n, Loaded: loaded, Total: l.Size()})
		n++
	}
	if err := ctx.Err(); err != nil {
		return text.Text{}, err
	}
	return txt, nil
}

// readFragments starts a goroutine reading r in pieces of about fragSize
// bytes. Every fragment ends on a character boundary: trailing bytes of an
// incomplete character are carried over to the next fragment.
func readFragments(ctx context.Context, r io.Reader, fragSize int64) <-chan fragment {
	ch := make(chan fragment, 4)
	go func() {
		defer close(ch)
		var carry []byte
		for {
			buf := make([]byte, len(carry), int(fragSize)+len(carry))
			copy(buf, carry)
			cnt, err := io.ReadFull(r, buf[len(carry):cap(buf)])
			buf = buf[:len(carry)+cnt]
			eof := err == io.EOF || err == io.ErrUnexpectedEOF
			if err != nil && !eof {
				send(ctx, ch, fragment{err: err})
				return
			}
			carry = nil
			if !eof {
				cut := alignedEnd(buf)
				buf, carry = buf[:cut], append([]byte(nil), buf[cut:]...)
			}
			if len(buf) > 0 && !send(ctx, ch, fragment{data: buf}) {
				return
			}
			if eof {
				return
			}
		}
	}()
	return ch
}

func send(ctx context.Context, ch chan<- fragment, f fragment) bool {
	select {
	case ch <- f:
		return true
	case <-ctx.Done():
		return false
	}
}

// alignedEnd returns the length of the longest prefix of buf not ending in
// an incomplete UTF-8 sequence.
func alignedEnd(buf []byte) int {
	for back := 1; back <= utf8.UTFMax && back <= len(buf); back++ {
		i := len(buf) - back
		if !utf8.RuneStart(buf[i]) {
			continue
		}
		if utf8.FullRune(buf[i:]) {
			return len(buf)
		}
		return i
	}
	return len(buf)
}

// Load reads a text file in fragments of about fragSize bytes. See
// Loader.Load.
func Load(ctx context.Context, path string, fragSize int64) (text.Text, error) {
	l, err := NewLoader(path, fragSize)
	if err != nil {
		return text.Text{}, err
	}
	return l.Load(ctx)
}
