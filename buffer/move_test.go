package buffer

import (
	"errors"
	"testing"
)

func TestBuffer_MoveCaret_Bounds(t *testing.T) {
	b := New("ab\nçd!", Options{})

	if err := b.MoveCaret(1, 3); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := b.Caret(); got != (Caret{Line: 1, Col: 3}) {
		t.Fatalf("caret=%v, want (1:3)", got)
	}

	cases := []struct {
		line, col int
		kind      IndexKind
	}{
		{line: -1, col: 0, kind: IndexLine},
		{line: 2, col: 0, kind: IndexLine},
		{line: 0, col: 3, kind: IndexColumn},
		{line: 1, col: -1, kind: IndexColumn},
	}
	for _, tc := range cases {
		err := b.MoveCaret(tc.line, tc.col)
		var re *RangeError
		if !errors.As(err, &re) || re.Kind != tc.kind {
			t.Fatalf("MoveCaret(%d,%d) err=%v, want %s range error", tc.line, tc.col, err, tc.kind)
		}
	}
	if got := b.Caret(); got != (Caret{Line: 1, Col: 3}) {
		t.Fatalf("caret changed on error: %v", got)
	}
}

func TestBuffer_MoveBackwardForward_StayOnLine(t *testing.T) {
	b := New("abc\ndef", Options{})
	if err := b.MoveCaret(1, 1); err != nil {
		t.Fatalf("move: %v", err)
	}

	if err := b.MoveForward(2); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if got := b.Caret(); got != (Caret{Line: 1, Col: 3}) {
		t.Fatalf("caret=%v, want (1:3)", got)
	}
	if err := b.MoveForward(1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("forward past EOL err=%v, want ErrOutOfBounds", err)
	}

	if err := b.MoveBackward(3); err != nil {
		t.Fatalf("backward: %v", err)
	}
	if err := b.MoveBackward(1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("backward past SOL err=%v, want ErrOutOfBounds", err)
	}
}

func TestBuffer_MoveLineEnds(t *testing.T) {
	b := New("hello\nw\nworld", Options{})
	if err := b.MoveCaret(1, 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	if err := b.MoveToEOL(); err != nil || b.Caret() != (Caret{Line: 1, Col: 1}) {
		t.Fatalf("MoveToEOL caret=%v err=%v", b.Caret(), err)
	}
	if err := b.MoveToSOL(); err != nil || b.Caret() != (Caret{Line: 1, Col: 0}) {
		t.Fatalf("MoveToSOL caret=%v err=%v", b.Caret(), err)
	}
	if err := b.MoveToPrevEOL(); err != nil || b.Caret() != (Caret{Line: 0, Col: 5}) {
		t.Fatalf("MoveToPrevEOL caret=%v err=%v", b.Caret(), err)
	}
	if err := b.MoveToPrevEOL(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("MoveToPrevEOL on first line err=%v", err)
	}
	if err := b.MoveToNextSOL(); err != nil || b.Caret() != (Caret{Line: 1, Col: 0}) {
		t.Fatalf("MoveToNextSOL caret=%v err=%v", b.Caret(), err)
	}
	if err := b.MoveToEnd(); err != nil || b.Caret() != (Caret{Line: 2, Col: 5}) {
		t.Fatalf("MoveToEnd caret=%v err=%v", b.Caret(), err)
	}
	if err := b.MoveToNextSOL(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("MoveToNextSOL on last line err=%v", err)
	}
	if err := b.MoveToStart(); err != nil || b.Caret() != (Caret{}) {
		t.Fatalf("MoveToStart caret=%v err=%v", b.Caret(), err)
	}
}

func TestBuffer_CaretPredicates(t *testing.T) {
	b := New("ab\n\ncd", Options{})

	check := func(name string, got, want bool) {
		t.Helper()
		if got != want {
			t.Fatalf("%s=%v, want %v (caret %v)", name, got, want, b.Caret())
		}
	}

	check("start.first", b.CaretIsAtFirstLine(), true)
	check("start.sol", b.CaretIsAtSOL(), true)
	check("start.start", b.CaretIsAtStart(), true)
	check("start.eol", b.CaretIsAtEOL(), false)

	if err := b.MoveCaret(1, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	check("empty.sol", b.CaretIsAtSOL(), true)
	check("empty.eol", b.CaretIsAtEOL(), true)
	check("empty.start", b.CaretIsAtStart(), false)
	check("empty.end", b.CaretIsAtEnd(), false)

	if err := b.MoveToEnd(); err != nil {
		t.Fatalf("move: %v", err)
	}
	check("end.last", b.CaretIsAtLastLine(), true)
	check("end.end", b.CaretIsAtEnd(), true)
}
