package text

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustText(t *testing.T, s string) Text {
	t.Helper()
	txt, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if err := txt.Tree().Check(); err != nil {
		t.Fatalf("invalid chunk tree: %v", err)
	}
	return txt
}

func TestZeroText(t *testing.T) {
	var txt Text
	if !txt.IsEmpty() || txt.Len() != 0 || txt.String() != "" {
		t.Fatalf("zero text is not empty")
	}
	if txt.LineCount() != 1 {
		t.Fatalf("expected one line, got %d", txt.LineCount())
	}
	line, err := txt.Line(0)
	if err != nil || line != "" {
		t.Fatalf("Line(0) = %q, %v", line, err)
	}
	edited, err := txt.Insert(0, "hello")
	if err != nil || edited.String() != "hello" {
		t.Fatalf("Insert on zero text = %q, %v", edited, err)
	}
}

func TestFromStringSummary(t *testing.T) {
	s := strings.Repeat("Grüße, Welt!\n", 50)
	txt := mustText(t, s)
	if txt.String() != s {
		t.Fatalf("text does not round-trip")
	}
	sum := txt.Summary()
	if sum.Bytes != uint64(len(s)) || sum.Chars != 13*50 || sum.Lines != 50 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if len(txt.Chunks()) < 2 {
		t.Fatalf("expected several chunks")
	}
}

func TestInsertDeleteMatchModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	rng := rand.New(rand.NewSource(7))
	words := []string{"a", "ß", "€uro", "\n", "lorem ipsum dolor sit amet ", "😀", strings.Repeat("x", 70)}
	model := ""
	txt := Text{}
	for step := 0; step < 400; step++ {
		pos := boundary(model, rng.Intn(len(model)+1))
		var err error
		if rng.Intn(3) > 0 || len(model) == 0 {
			w := words[rng.Intn(len(words))]
			txt, err = txt.Insert(uint64(pos), w)
			model = model[:pos] + w + model[pos:]
		} else {
			end := boundary(model, pos+rng.Intn(len(model)-pos+1))
			txt, err = txt.Delete(uint64(pos), uint64(end-pos))
			model = model[:pos] + model[end:]
		}
		if err != nil {
			t.Fatalf("step %d: edit failed: %v", step, err)
		}
		if txt.String() != model {
			t.Fatalf("step %d: text differs from model", step)
		}
		if err := txt.Tree().Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}

// boundary moves pos forward to the next character boundary of s.
func boundary(s string, pos int) int {
	for pos < len(s) && s[pos]&0xc0 == 0x80 {
		pos++
	}
	return pos
}

func TestEditsArePersistent(t *testing.T) {
	txt := mustText(t, "hello world")
	edited, err := txt.Insert(5, ",")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if txt.String() != "hello world" || edited.String() != "hello, world" {
		t.Fatalf("unexpected versions %q / %q", txt, edited)
	}
}

func TestPositionsMustBeCharBoundaries(t *testing.T) {
	txt := mustText(t, "aü")
	if _, err := txt.Insert(2, "x"); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
	if _, _, err := txt.Split(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := txt.Delete(1, 5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := txt.Substr(0, 2); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
}

func TestSplitConcat(t *testing.T) {
	s := strings.Repeat("0123456789", 30)
	txt := mustText(t, s)
	for _, pos := range []uint64{0, 1, 63, 64, 65, 150, 299, 300} {
		left, right, err := txt.Split(pos)
		if err != nil {
			t.Fatalf("Split(%d) failed: %v", pos, err)
		}
		if left.String() != s[:pos] || right.String() != s[pos:] {
			t.Fatalf("Split(%d) produced wrong halves", pos)
		}
		joined, err := left.Concat(right)
		if err != nil || joined.String() != s {
			t.Fatalf("Concat after Split(%d) failed: %v", pos, err)
		}
		if err := joined.Tree().Check(); err != nil {
			t.Fatalf("Concat after Split(%d): %v", pos, err)
		}
	}
}

func TestSubstr(t *testing.T) {
	s := strings.Repeat("äbc", 60)
	txt := mustText(t, s)
	got, err := txt.Substr(60, 100)
	if err != nil || got != s[60:160] {
		t.Fatalf("Substr = %q, %v", got, err)
	}
}

func TestLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(strings.Repeat("x", i))
		sb.WriteByte('\n')
	}
	sb.WriteString("tail")
	txt := mustText(t, sb.String())
	if txt.LineCount() != 101 {
		t.Fatalf("expected 101 lines, got %d", txt.LineCount())
	}
	start := uint64(0)
	for i := 0; i < 100; i++ {
		pos, err := txt.LineStart(uint64(i))
		if err != nil || pos != start {
			t.Fatalf("LineStart(%d) = %d, %v; want %d", i, pos, err, start)
		}
		line, err := txt.Line(uint64(i))
		if err != nil || line != strings.Repeat("x", i) {
			t.Fatalf("Line(%d) = %q, %v", i, line, err)
		}
		start += uint64(i) + 1
	}
	if line, err := txt.Line(100); err != nil || line != "tail" {
		t.Fatalf("Line(100) = %q, %v", line, err)
	}
	if _, err := txt.LineStart(101); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestFingerprintIgnoresChunking(t *testing.T) {
	s := strings.Repeat("fingerprint ", 20)
	a := mustText(t, s)
	b := mustText(t, s[:100])
	b, err := b.Insert(100, s[100:])
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("equal texts have different fingerprints")
	}
	c, _ := a.Delete(0, 1)
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("different texts have equal fingerprints")
	}
}
