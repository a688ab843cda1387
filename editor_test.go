package main

import "testing"

func TestInsertCharAtEndOfBuffer(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertChar('a')
	e.insertChar('b')
	if e.numRows() != 1 {
		t.Fatalf("numRows = %d, want 1", e.numRows())
	}
	if got := string(e.row(0).chars); got != "ab" {
		t.Fatalf("row 0 = %q, want ab", got)
	}
	if e.cx != 2 {
		t.Errorf("cx = %d, want 2", e.cx)
	}
	if e.dirty == 0 {
		t.Errorf("dirty = 0, want > 0 after an edit")
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("helloworld"))
	e.cx = 5
	e.insertNewline()

	if e.numRows() != 2 {
		t.Fatalf("numRows = %d, want 2", e.numRows())
	}
	if got := string(e.row(0).chars); got != "hello" {
		t.Errorf("row 0 = %q, want hello", got)
	}
	if got := string(e.row(1).chars); got != "world" {
		t.Errorf("row 1 = %q, want world", got)
	}
	if e.cx != 0 || e.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", e.cx, e.cy)
	}
}

func TestDelCharJoinsRows(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("hello"))
	e.insertRow(1, []byte("world"))
	e.cx, e.cy = 0, 1

	e.delChar()

	if e.numRows() != 1 {
		t.Fatalf("numRows = %d, want 1", e.numRows())
	}
	if got := string(e.row(0).chars); got != "helloworld" {
		t.Errorf("row 0 = %q, want helloworld", got)
	}
	if e.cy != 0 || e.cx != 5 {
		t.Errorf("cursor = (%d,%d), want (5,0)", e.cx, e.cy)
	}
}

func TestDelCharAtOriginIsNoop(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("hi"))
	e.cx, e.cy = 0, 0
	e.delChar()
	if string(e.row(0).chars) != "hi" {
		t.Errorf("row 0 = %q, want unchanged hi", e.row(0).chars)
	}
}

func TestRowsToStringTrailingNewlinePerRow(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("abcd"))
	e.insertRow(1, []byte("ef"))

	got := e.rowsToString()
	want := "abcd\nef\n"
	if string(got) != want {
		t.Fatalf("rowsToString = %q, want %q", got, want)
	}
	if len(got) != 8 {
		t.Fatalf("len(rowsToString) = %d, want 8", len(got))
	}
}

func TestScrollKeepsCursorInVerticalWindow(t *testing.T) {
	e := newEditorConfig(7, 80) // screenRows = 5
	for i := 0; i < 20; i++ {
		e.insertRow(i, []byte("line"))
	}

	e.cy = 12
	e.scroll()
	if e.cy < e.rowoff || e.cy >= e.rowoff+e.screenRows {
		t.Fatalf("cursor row %d outside window [%d,%d)", e.cy, e.rowoff, e.rowoff+e.screenRows)
	}

	e.cy = 0
	e.scroll()
	if e.rowoff != 0 {
		t.Errorf("rowoff = %d, want 0 after cursor moved back to row 0", e.rowoff)
	}
}

func TestScrollKeepsCursorInHorizontalWindow(t *testing.T) {
	e := newEditorConfig(24, 10) // screenCols = 10
	e.insertRow(0, []byte("a very long line of text that overflows"))
	e.cx = 30
	e.scroll()
	if e.rx < e.coloff || e.rx >= e.coloff+e.screenCols {
		t.Fatalf("rx %d outside window [%d,%d)", e.rx, e.coloff, e.coloff+e.screenCols)
	}
}

func TestMoveCursorClampsAtRowLength(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("abc"))
	e.cx = 3
	e.moveCursor(arrowRight)
	if e.cy != 1 || e.cx != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,1) after arrowRight past end of row", e.cx, e.cy)
	}
}
