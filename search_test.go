package main

import "testing"

func TestSearchCallbackFindsSuccessiveMatches(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("apple pie"))
	e.insertRow(1, []byte("apple sauce"))
	e.insertRow(2, []byte("apple tart"))

	st := newSearchState()

	st.callback(e, nil, "apple", 'a')
	if e.cy != 0 {
		t.Fatalf("first match row = %d, want 0", e.cy)
	}

	st.callback(e, nil, "apple", arrowDown)
	if e.cy != 1 {
		t.Fatalf("second match row = %d, want 1", e.cy)
	}

	st.callback(e, nil, "apple", arrowDown)
	if e.cy != 2 {
		t.Fatalf("third match row = %d, want 2", e.cy)
	}

	// Wraps back around to row 0 on the next forward step.
	st.callback(e, nil, "apple", arrowDown)
	if e.cy != 0 {
		t.Fatalf("wrapped match row = %d, want 0", e.cy)
	}
}

func TestSearchCallbackHighlightsAndRestoresMatch(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("needle in haystack"))
	updateSyntax(&e.rows, nil, 0)

	st := newSearchState()
	st.callback(e, nil, "needle", 'e')

	r := e.row(0)
	for i := 0; i < len("needle"); i++ {
		if r.hl[i] != hlMatch {
			t.Fatalf("hl[%d] = %d, want hlMatch while the search is active", i, r.hl[i])
		}
	}

	st.restore(e)
	for i := 0; i < len("needle"); i++ {
		if r.hl[i] == hlMatch {
			t.Fatalf("hl[%d] still hlMatch after restore", i)
		}
	}
}

func TestSearchCallbackEscResetsState(t *testing.T) {
	e := newEditorConfig(24, 80)
	e.insertRow(0, []byte("apple"))
	st := newSearchState()
	st.callback(e, nil, "apple", 'a')
	st.callback(e, nil, "apple", esc)
	if st.lastMatch != -1 {
		t.Fatalf("lastMatch = %d, want -1 after ESC", st.lastMatch)
	}
}
