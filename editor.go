package main

import (
	"fmt"
	"strings"
	"time"
)

const quitTimes = 3

// editorConfig holds the full mutable state of one editing session: the row
// store, the logical cursor and derived render column, the scroll offsets,
// screen geometry, and the bits of UI state (status message, dirty count,
// active syntax) that the renderer and the operations below read and write.
type editorConfig struct {
	rows rowStore

	cx, cy int
	rx     int

	rowoff, coloff int

	screenRows, screenCols int

	dirty int

	filename string

	statusMsg     string
	statusMsgTime time.Time

	syntax *editorSyntax

	quitTimes int
}

func newEditorConfig(rows, cols int) *editorConfig {
	return &editorConfig{
		screenRows: rows - 2,
		screenCols: cols,
		quitTimes:  quitTimes,
	}
}

func (e *editorConfig) numRows() int { return e.rows.len() }

func (e *editorConfig) row(i int) *row {
	if i < 0 || i >= e.rows.len() {
		return nil
	}
	return &e.rows.rows[i]
}

// touchRow re-derives render and hl for the row at at (and cascades to
// successors per the highlighter's comment-state propagation), then marks
// the buffer dirty. Every row mutator in this file funnels through it.
func (e *editorConfig) touchRow(at int) {
	updateSyntax(&e.rows, e.syntax, at)
	e.dirty++
}

func (e *editorConfig) insertRow(at int, chars []byte) {
	e.rows.insertRow(at, chars)
	updateSyntax(&e.rows, e.syntax, at)
	e.dirty++
}

func (e *editorConfig) delRow(at int) {
	if at < 0 || at >= e.rows.len() {
		return
	}
	e.rows.delRow(at)
	e.dirty++
	if at < e.rows.len() {
		updateSyntax(&e.rows, e.syntax, at)
	}
}

// insertChar inserts a byte at the logical cursor, growing the buffer with a
// fresh row first if the cursor sits at the past-the-end position.
func (e *editorConfig) insertChar(c byte) {
	if e.cy == e.numRows() {
		e.insertRow(e.numRows(), nil)
	}
	rowInsertChar(e.row(e.cy), e.cx, c)
	e.touchRow(e.cy)
	e.cx++
}

// insertNewline splits the current row at cx, or inserts a bare empty row
// when cx is 0, then advances the cursor onto the new line.
func (e *editorConfig) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		r := e.row(e.cy)
		tail := append([]byte(nil), r.chars[e.cx:]...)
		r.chars = r.chars[:e.cx]
		e.touchRow(e.cy)
		e.insertRow(e.cy+1, tail)
	}
	e.cy++
	e.cx = 0
}

// delChar removes the byte before the cursor, joining the current row into
// the previous one when the cursor sits at column 0.
func (e *editorConfig) delChar() {
	if e.cy == e.numRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	r := e.row(e.cy)
	if e.cx > 0 {
		rowDelChar(r, e.cx-1)
		e.touchRow(e.cy)
		e.cx--
		return
	}

	prev := e.row(e.cy - 1)
	e.cx = len(prev.chars)
	rowAppendString(prev, r.chars)
	e.touchRow(e.cy - 1)
	e.delRow(e.cy)
	e.cy--
}

// rowsToString serialises every row into a single byte slice, one trailing
// '\n' per row including the last.
func (e *editorConfig) rowsToString() []byte {
	var b strings.Builder
	for i := 0; i < e.rows.len(); i++ {
		b.Write(e.rows.rows[i].chars)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// scroll resolves rowoff/coloff so the cursor cell stays within the
// drawable window, per §4.3. It must run before every frame is drawn.
func (e *editorConfig) scroll() {
	e.rx = 0
	if e.cy < e.numRows() {
		e.rx = cxToRx(e.row(e.cy), e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// moveCursor handles the four arrow keys: horizontal motion wraps across
// row boundaries, vertical motion clamps at the buffer's edges, and the
// resulting cx is always clamped back into the destination row's length.
func (e *editorConfig) moveCursor(key int) {
	switch key {
	case arrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.row(e.cy).chars)
		}
	case arrowRight:
		r := e.row(e.cy)
		if r != nil && e.cx < len(r.chars) {
			e.cx++
		} else if r != nil && e.cx == len(r.chars) {
			e.cy++
			e.cx = 0
		}
	case arrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case arrowDown:
		if e.cy < e.numRows() {
			e.cy++
		}
	}

	rowLen := 0
	if r := e.row(e.cy); r != nil {
		rowLen = len(r.chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

func (e *editorConfig) setStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}
