package tuitest

import (
	"context"
	"testing"
)

func TestPlainStripsEscapes(t *testing.T) {
	t.Parallel()

	rec := &Recording{Raw: []byte("\x1b[?1049h\x1b[H\x1b[2J\x1b[1;32m1 - \x1b[0m\x1b[32mhttp\x1b[0m   \r\n\x1b]11;?\x07footer\r\n\r\n")}
	want := "1 - http\nfooter"
	if got := rec.Plain(); got != want {
		t.Fatalf("plain mismatch: got %q want %q", got, want)
	}
	if !rec.Contains("1 - http") {
		t.Fatal("Contains should find text across style boundaries")
	}
}

func TestParseFramesSplitsOnClear(t *testing.T) {
	t.Parallel()

	frames := parseFrames([]byte("first\x1b[2J\x1b[Hsecond  \n\n"))
	if len(frames) != 2 {
		t.Fatalf("frame count mismatch: got %d want 2", len(frames))
	}
	rec := &Recording{Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "second" || last.Index != 1 {
		t.Fatalf("final frame mismatch: %+v", last)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	t.Parallel()

	if _, err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty command")
	}
}
