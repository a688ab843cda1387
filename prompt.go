package main

import "bufio"

// editorPrompt reads a line of input on the message bar, one keystroke at a
// time, invoking callback after every keystroke so callers like the search
// driver can react incrementally. Returns the confirmed string and true, or
// ("", false) if the user cancelled with ESC.
func editorPrompt(e *editorConfig, in *bufio.Reader, format string, callback func(e *editorConfig, in *bufio.Reader, query string, key int)) (string, bool) {
	buf := make([]byte, 0, 64)

	for {
		e.setStatusMessage(format, string(buf))
		editorRefreshScreen(e)

		key, err := editorReadKey(in)
		if err != nil {
			e.setStatusMessage("")
			if callback != nil {
				callback(e, in, string(buf), esc)
			}
			return "", false
		}

		switch key {
		case delKey, ctrlH, backspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case esc:
			e.setStatusMessage("")
			if callback != nil {
				callback(e, in, string(buf), esc)
			}
			return "", false
		case enter:
			if len(buf) != 0 {
				e.setStatusMessage("")
				if callback != nil {
					callback(e, in, string(buf), enter)
				}
				return string(buf), true
			}
		default:
			if key >= 32 && key < 127 {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(e, in, string(buf), key)
		}
	}
}
