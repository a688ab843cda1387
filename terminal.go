package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)

// rawTerminal owns the original termios snapshot so it can be restored on
// exit no matter which path the program takes out.
type rawTerminal struct {
	fd       int
	orig     unix.Termios
	restored bool
}

// enableRawMode switches fd into the unbuffered, non-echoing byte stream the
// editor owns for the session: input and output processing, signal
// generation and local echo are all disabled, mirroring cfmakeraw(3).
func enableRawMode(fd int) (*rawTerminal, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("getting termios: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1 // 100ms read timeout, so a lone ESC byte doesn't block sequence parsing

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("setting termios: %w", err)
	}

	return &rawTerminal{fd: fd, orig: *orig}, nil
}

// restore puts the terminal back into the mode it was in before
// enableRawMode. Safe to call more than once.
func (t *rawTerminal) restore() error {
	if t == nil || t.restored {
		return nil
	}
	t.restored = true
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.orig); err != nil {
		return fmt.Errorf("restoring termios: %w", err)
	}
	return nil
}

// windowSize reports the current terminal dimensions, falling back to the
// cursor-position probe documented in the wire format when TIOCGWINSZ is
// unavailable (e.g. the TTY has no ioctl support in this environment).
func windowSize(fd int, in *bufio.Reader) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, werr := os.Stdout.WriteString("\x1b[999C\x1b[999B"); werr != nil {
		return 0, 0, fmt.Errorf("probing window size: %w", werr)
	}
	return cursorPosition(in)
}

// cursorPosition issues a Device Status Report (ESC[6n) and parses the
// terminal's ESC[r;cR reply.
func cursorPosition(in *bufio.Reader) (rows, cols int, err error) {
	if _, err := os.Stdout.WriteString("\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("writing cursor position query: %w", err)
	}

	reply, err := in.ReadString('R')
	if err != nil {
		return 0, 0, fmt.Errorf("reading cursor position reply: %w", err)
	}
	reply = strings.TrimSuffix(reply, "R")
	idx := strings.IndexByte(reply, '[')
	if idx < 0 {
		return 0, 0, errors.New("malformed cursor position reply")
	}
	parts := strings.SplitN(reply[idx+1:], ";", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed cursor position reply %q", reply)
	}
	rows, err1 := strconv.Atoi(parts[0])
	cols, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("parsing cursor position reply %q", reply)
	}
	return rows, cols, nil
}

// watchResize returns a channel that receives a value each time the
// terminal is resized. It only wires up signal delivery; the re-query of
// window size and the resulting redraw stay on the main loop's goroutine
// (drainResize below), so stdout and cfg keep their single writer instead
// of racing a handler goroutine against editorReadKey/editorRefreshScreen.
func watchResize() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch
}

// drainResize checks for a pending resize signal without blocking, and if
// one arrived, re-queries the window size and applies it to cfg.
func drainResize(ch chan os.Signal, cfg *editorConfig, in *bufio.Reader) {
	select {
	case <-ch:
	default:
		return
	}

	rows, cols, err := windowSize(int(os.Stdin.Fd()), in)
	if err != nil {
		return
	}
	cfg.screenRows = rows - 2
	if cfg.screenRows < 0 {
		cfg.screenRows = 0
	}
	cfg.screenCols = cols
}

// die reports a fatal error after restoring the terminal to a usable state,
// and exits with status 1, per the fatal-I/O error taxonomy.
func die(term *rawTerminal, err error) {
	var buf bytes.Buffer
	buf.WriteString("\x1b[2J")
	buf.WriteString("\x1b[H")
	os.Stdout.Write(buf.Bytes())
	term.restore()
	log.Fatal(err)
}
