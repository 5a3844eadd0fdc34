package cli

import (
	"testing"

	"github.com/voluta/voluta/internal/output"
)

func TestTailFile_Feed(t *testing.T) {
	m := mustMatcher(t, []string{"error"})
	f := output.NewTextFormatter(output.NoStyles(), true, false, false)
	tf := &tailFile{}

	// Bytes without a newline wait in the partial buffer.
	buf := tf.feed(nil, m, f, "app.log", []byte("err"), false)
	if len(buf) != 0 {
		t.Fatalf("unexpected output %q before line completed", buf)
	}

	// Completing the line emits its match.
	buf = tf.feed(nil, m, f, "app.log", []byte("or: one\nok line\npartial"), false)
	if want := "1:1:error: one\n"; string(buf) != want {
		t.Errorf("got %q, want %q", string(buf), want)
	}

	// Line numbers keep counting from the start of the stream, and the
	// held partial joins the next chunk.
	buf = tf.feed(nil, m, f, "app.log", []byte(" error two\n"), false)
	if want := "3:9:partial error two\n"; string(buf) != want {
		t.Errorf("got %q, want %q", string(buf), want)
	}
}

func TestTailFile_MultiFilePrefix(t *testing.T) {
	m := mustMatcher(t, []string{"hit"})
	f := output.NewTextFormatter(output.NoStyles(), false, false, false)
	tf := &tailFile{}

	buf := tf.feed(nil, m, f, "b.log", []byte("a hit here\n"), true)
	if want := "b.log:a hit here\n"; string(buf) != want {
		t.Errorf("got %q, want %q", string(buf), want)
	}
}

func TestTailFile_Reset(t *testing.T) {
	m := mustMatcher(t, []string{"x"})
	f := output.NewTextFormatter(output.NoStyles(), true, false, false)
	tf := &tailFile{}

	tf.feed(nil, m, f, "a.log", []byte("one\ntwo\npart"), false)
	tf.reset()
	if tf.partial != nil || tf.lines != 0 {
		t.Fatalf("reset left state: partial=%q lines=%d", tf.partial, tf.lines)
	}

	// After reset the next line is numbered 1 again.
	buf := tf.feed(nil, m, f, "a.log", []byte("x marks\n"), false)
	if want := "1:1:x marks\n"; string(buf) != want {
		t.Errorf("got %q, want %q", string(buf), want)
	}
}

func TestTailFile_NoMatchesNoOutput(t *testing.T) {
	m := mustMatcher(t, []string{"absent"})
	f := output.NewTextFormatter(output.NoStyles(), true, false, false)
	tf := &tailFile{}

	buf := tf.feed(nil, m, f, "a.log", []byte("nothing to see\nhere\n"), false)
	if len(buf) != 0 {
		t.Errorf("unexpected output %q", buf)
	}
	if tf.lines != 2 {
		t.Errorf("lines = %d, want 2", tf.lines)
	}
}
