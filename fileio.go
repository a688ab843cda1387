package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// editorOpen loads filename into a fresh buffer: the syntax table is
// selected from the name first so every row is highlighted as it is
// appended, trailing '\r' and '\n' are stripped per line, and the dirty
// counter is zeroed once the whole file is in.
func editorOpen(e *editorConfig, filename string) error {
	e.filename = filename
	e.syntax = selectSyntaxHighlight(filename)

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		e.rows.insertRow(e.numRows(), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	for i := 0; i < e.numRows(); i++ {
		updateSyntax(&e.rows, e.syntax, i)
	}
	e.dirty = 0
	return nil
}

// editorSave prompts for a filename when the buffer doesn't have one,
// re-selects the syntax table on a confirmed new name, then writes the
// serialised buffer with an explicit truncate so a shorter save never
// leaves trailing bytes from the previous contents.
func editorSave(e *editorConfig, in *bufio.Reader) {
	if e.filename == "" {
		name, ok := editorPrompt(e, in, "Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.setStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.syntax = selectSyntaxHighlight(e.filename)
		for i := 0; i < e.numRows(); i++ {
			updateSyntax(&e.rows, e.syntax, i)
		}
	}

	data := e.rowsToString()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	if _, err := f.Write(data); err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err)
		return
	}

	e.dirty = 0
	e.setStatusMessage("%d bytes written to disk", len(data))
}
