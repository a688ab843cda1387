package main

import (
	"bufio"
	"io"
)

// Key codes above the byte range so they never collide with a literal
// character read from the terminal.
const (
	backspace = 127
	enter     = 13
	ctrlQ     = 'q' & 0x1f
	ctrlS     = 's' & 0x1f
	ctrlF     = 'f' & 0x1f
	ctrlH     = 'h' & 0x1f
	ctrlL     = 'l' & 0x1f
	esc       = 27
)

const (
	arrowLeft = 1000 + iota
	arrowRight
	arrowUp
	arrowDown
	delKey
	homeKey
	endKey
	pageUp
	pageDown
)

// readByte reads one byte, retrying on the zero-byte read VTIME produces
// when no input arrives within the termios read timeout. Mirrors
// original_source/kilo.c's editorReadKey loop ("while (nread != 1) ..."),
// which treats that case as "try again", not as end of input.
func readByte(in *bufio.Reader) (byte, error) {
	for {
		b, err := in.ReadByte()
		if err == nil {
			return b, nil
		}
		if err == io.EOF || err == io.ErrNoProgress {
			continue
		}
		return 0, err
	}
}

// editorReadKey blocks until it can return one logical keypress, decoding
// the ESC[ / ESC O / ESC[N~ escape families documented in the wire format
// into the single-rune codes above. A lone, unrecognised ESC is returned as
// itself.
func editorReadKey(in *bufio.Reader) (int, error) {
	b, err := readByte(in)
	if err != nil {
		return 0, err
	}

	if b != esc {
		return int(b), nil
	}

	first, err := in.ReadByte()
	if err != nil {
		if err == io.EOF {
			return esc, nil
		}
		return 0, err
	}

	switch first {
	case '[':
		second, err := in.ReadByte()
		if err != nil {
			if err == io.EOF {
				return esc, nil
			}
			return 0, err
		}
		if second >= '0' && second <= '9' {
			third, err := in.ReadByte()
			if err != nil {
				if err == io.EOF {
					return esc, nil
				}
				return 0, err
			}
			if third == '~' {
				switch second {
				case '1':
					return homeKey, nil
				case '3':
					return delKey, nil
				case '4':
					return endKey, nil
				case '5':
					return pageUp, nil
				case '6':
					return pageDown, nil
				case '7':
					return homeKey, nil
				case '8':
					return endKey, nil
				}
			}
			return esc, nil
		}
		switch second {
		case 'A':
			return arrowUp, nil
		case 'B':
			return arrowDown, nil
		case 'C':
			return arrowRight, nil
		case 'D':
			return arrowLeft, nil
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
		return esc, nil
	case 'O':
		second, err := in.ReadByte()
		if err != nil {
			if err == io.EOF {
				return esc, nil
			}
			return 0, err
		}
		switch second {
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
		return esc, nil
	}

	return esc, nil
}

// editorProcessKeypress reads and dispatches one keypress, returning quit
// == true once the caller should tear down and exit cleanly.
func editorProcessKeypress(e *editorConfig, in *bufio.Reader) (quit bool, err error) {
	key, err := editorReadKey(in)
	if err != nil {
		return false, err
	}

	switch key {
	case enter:
		e.insertNewline()

	case ctrlQ:
		if e.dirty > 0 && e.quitTimes > 0 {
			e.setStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return false, nil
		}
		return true, nil

	case ctrlS:
		editorSave(e, in)

	case homeKey:
		e.cx = 0

	case endKey:
		if r := e.row(e.cy); r != nil {
			e.cx = len(r.chars)
		}

	case ctrlF:
		editorFind(e, in)

	case backspace, ctrlH, delKey:
		if key == delKey {
			e.moveCursor(arrowRight)
		}
		e.delChar()

	case pageUp, pageDown:
		if key == pageUp {
			e.cy = e.rowoff
		} else {
			e.cy = e.rowoff + e.screenRows - 1
			if e.cy > e.numRows() {
				e.cy = e.numRows()
			}
		}
		dir := arrowDown
		if key == pageUp {
			dir = arrowUp
		}
		for t := e.screenRows; t > 0; t-- {
			e.moveCursor(dir)
		}

	case arrowUp, arrowDown, arrowLeft, arrowRight:
		e.moveCursor(key)

	case ctrlL, esc:
		// redraw-only / no-op, per the dispatch table.

	default:
		if key >= 0 && key < 256 {
			e.insertChar(byte(key))
		}
	}

	e.quitTimes = quitTimes
	return false, nil
}
