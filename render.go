package main

import (
	"bytes"
	"fmt"
	"os"
	"time"
)

const kiloVersion = "0.0.1"

// editorRefreshScreen resolves scroll position, then stages one full frame
// (cursor hidden, cursor home, every row, status bar, message bar, cursor
// shown at its final position) into a single append buffer and writes it in
// one syscall, so a partially drawn frame is never visible.
func editorRefreshScreen(e *editorConfig) {
	e.scroll()

	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l")
	ab.WriteString("\x1b[H")

	drawRows(e, &ab)
	drawStatusBar(e, &ab)
	drawMessageBar(e, &ab)

	fmt.Fprintf(&ab, "\x1b[%d;%dH", (e.cy-e.rowoff)+1, (e.rx-e.coloff)+1)
	ab.WriteString("\x1b[?25h")

	os.Stdout.Write(ab.Bytes())
}

// drawRows paints the text area: real rows are sliced into the visible
// column window with their highlight classes translated to SGR escapes,
// color switches are only emitted when the class actually changes, and rows
// past the end of the buffer draw as tildes, with a centred welcome banner
// when the buffer is empty.
func drawRows(e *editorConfig, ab *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= e.numRows() {
			if e.numRows() == 0 && y == e.screenRows/3 {
				welcome := fmt.Sprintf("Kilo editor -- version %s", kiloVersion)
				if len(welcome) > e.screenCols {
					welcome = welcome[:e.screenCols]
				}
				padding := (e.screenCols - len(welcome)) / 2
				if padding > 0 {
					ab.WriteByte('~')
					padding--
				}
				for ; padding > 0; padding-- {
					ab.WriteByte(' ')
				}
				ab.WriteString(welcome)
			} else {
				ab.WriteByte('~')
			}
		} else {
			r := e.row(filerow)
			render := r.render
			hl := r.hl
			if e.coloff < len(render) {
				render = render[e.coloff:]
				hl = hl[e.coloff:]
			} else {
				render = nil
				hl = nil
			}
			if len(render) > e.screenCols {
				render = render[:e.screenCols]
				hl = hl[:e.screenCols]
			}

			curColor := -1
			for i, c := range render {
				switch {
				case c < 32:
					sym := byte('?')
					if c <= 26 {
						sym = c + '@'
					}
					ab.WriteString("\x1b[7m")
					ab.WriteByte(sym)
					ab.WriteString("\x1b[m")
					if curColor != -1 {
						fmt.Fprintf(ab, "\x1b[%dm", curColor)
					}
				case hl[i] == hlNormal:
					if curColor != -1 {
						ab.WriteString("\x1b[39m")
						curColor = -1
					}
					ab.WriteByte(c)
				default:
					color := syntaxToColor(hl[i])
					if color != curColor {
						curColor = color
						fmt.Fprintf(ab, "\x1b[%dm", color)
					}
					ab.WriteByte(c)
				}
			}
			ab.WriteString("\x1b[39m")
		}

		ab.WriteString("\x1b[K")
		ab.WriteString("\r\n")
	}
}

// drawStatusBar renders the inverse-video status line: truncated filename,
// line count and dirty marker on the left, filetype and cursor line on the
// right, padded to fill the full width.
func drawStatusBar(e *editorConfig, ab *bytes.Buffer) {
	ab.WriteString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	dirtyMark := ""
	if e.dirty > 0 {
		dirtyMark = " (modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines%s", name, e.numRows(), dirtyMark)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.numRows())

	ab.WriteString(status)
	for l := len(status); l < e.screenCols; l++ {
		if e.screenCols-l == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString("\x1b[m")
	ab.WriteString("\r\n")
}

// drawMessageBar shows the latest status message for five seconds from the
// moment it was set, then leaves the line blank.
func drawMessageBar(e *editorConfig, ab *bytes.Buffer) {
	ab.WriteString("\x1b[K")
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && time.Since(e.statusMsgTime) < 5*time.Second {
		ab.WriteString(msg)
	}
}
