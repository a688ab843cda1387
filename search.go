package main

import (
	"bufio"
	"bytes"
)

// searchState is the incremental-search driver's own scratch space: which
// row matched last, which direction to continue in, and the highlight bytes
// temporarily overwritten to show the match, so they can be restored. It is
// owned by editorFind's call frame rather than kept as package state.
type searchState struct {
	lastMatch   int
	direction   int
	savedHLLine int
	savedHL     []byte
}

func newSearchState() *searchState {
	return &searchState{lastMatch: -1, direction: 1, savedHLLine: -1}
}

// restore puts back any highlight bytes this search temporarily coloured
// hlMatch, undoing the previous callback invocation's visual state.
func (s *searchState) restore(e *editorConfig) {
	if s.savedHLLine == -1 {
		return
	}
	if r := e.row(s.savedHLLine); r != nil {
		copy(r.hl, s.savedHL)
	}
	s.savedHLLine = -1
	s.savedHL = nil
}

func (s *searchState) callback(e *editorConfig, in *bufio.Reader, query string, key int) {
	s.restore(e)

	switch key {
	case enter, esc:
		s.lastMatch = -1
		s.direction = 1
		return
	case arrowRight, arrowDown:
		s.direction = 1
	case arrowLeft, arrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if query == "" {
		return
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	current := s.lastMatch

	for i := 0; i < e.numRows(); i++ {
		current += s.direction
		switch {
		case current == -1:
			current = e.numRows() - 1
		case current == e.numRows():
			current = 0
		}

		r := e.row(current)
		idx := bytes.Index(r.render, []byte(query))
		if idx < 0 {
			continue
		}

		s.lastMatch = current
		e.cy = current
		e.cx = rxToCx(r, idx)
		e.rowoff = e.numRows()

		s.savedHLLine = current
		s.savedHL = append([]byte(nil), r.hl...)
		for j := idx; j < idx+len(query) && j < len(r.hl); j++ {
			r.hl[j] = hlMatch
		}
		break
	}
}

// editorFind drives an incremental, wrap-around search: the callback above
// reacts to every keystroke, moving the cursor to successive matches while
// arrow keys pick the search direction; ESC restores the cursor and scroll
// position that were active before the search began.
func editorFind(e *editorConfig, in *bufio.Reader) {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	st := newSearchState()
	_, ok := editorPrompt(e, in, "Search: %s (Use ESC/Arrows/Enter)", st.callback)
	st.restore(e)

	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
}
