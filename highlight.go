package main

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Highlight classes. Order matches the enumeration in the data model: every
// byte of a row's hl slice is one of these.
const (
	hlNormal byte = iota
	hlComment
	hlMlComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

const (
	hlHighlightNumbers = 1 << 0
	hlHighlightStrings = 1 << 1
)

// editorSyntax is a compiled-in highlighting definition for one filetype.
type editorSyntax struct {
	filetype   string
	filematch  []string
	keywords   []string // a trailing "|" marks a KEYWORD2 (secondary class)
	singleLine string
	mlStart    string
	mlEnd      string
	flags      int
}

var hldb = []editorSyntax{
	{
		filetype: "c",
		filematch: []string{
			".c", ".h", ".cpp", ".hpp", ".cc",
		},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		singleLine: "//",
		mlStart:    "/*",
		mlEnd:      "*/",
		flags:      hlHighlightNumbers | hlHighlightStrings,
	},
	{
		filetype: "go",
		filematch: []string{
			".go",
		},
		keywords: []string{
			"break", "default", "func", "interface", "select",
			"case", "defer", "go", "map", "struct",
			"chan", "else", "goto", "package", "switch",
			"const", "fallthrough", "if", "range", "type",
			"continue", "for", "import", "return", "var",
			"bool|", "byte|", "complex64|", "complex128|", "error|", "float32|", "float64|",
			"int|", "int8|", "int16|", "int32|", "int64|", "rune|", "string|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "uintptr|",
		},
		singleLine: "//",
		mlStart:    "/*",
		mlEnd:      "*/",
		flags:      hlHighlightNumbers | hlHighlightStrings,
	},
}

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	if c == 0 || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
		return true
	}
	return bytes.IndexByte([]byte(separators), c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// computeHighlight classifies row.render left to right, per §4.6, given
// whether the predecessor row ended inside an open multi-line comment. It
// returns the row's new hl slice and its own trailing open-comment bit.
func computeHighlight(syntax *editorSyntax, render []byte, prevOpenComment bool) (hl []byte, openComment bool) {
	hl = make([]byte, len(render))
	if syntax == nil {
		return hl, false
	}

	scs := []byte(syntax.singleLine)
	mcs := []byte(syntax.mlStart)
	mce := []byte(syntax.mlEnd)

	prevSep := true
	inString := byte(0)
	inComment := prevOpenComment

	i := 0
	for i < len(render) {
		c := render[i]
		prevHL := hlNormal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				hl[j] = hlComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = hlMlComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce); j++ {
						hl[i+j] = hlMlComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs); j++ {
					hl[i+j] = hlMlComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syntax.flags&hlHighlightStrings != 0 {
			if inString != 0 {
				hl[i] = hlString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = hlString
					i += 2
					prevSep = false
					continue
				}
				if c == inString {
					inString = 0
					prevSep = true
				} else {
					prevSep = false
				}
				i++
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = hlString
				prevSep = false
				i++
				continue
			}
		}

		if syntax.flags&hlHighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHL == hlNumber)) || (c == '.' && prevHL == hlNumber) {
				hl[i] = hlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range syntax.keywords {
				class := byte(hlKeyword1)
				klen := len(kw)
				if strings.HasSuffix(kw, "|") {
					class = hlKeyword2
					klen--
					kw = kw[:klen]
				}
				if klen == 0 || i+klen > len(render) {
					continue
				}
				if !bytes.Equal(render[i:i+klen], []byte(kw)) {
					continue
				}
				if i+klen != len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				for j := 0; j < klen; j++ {
					hl[i+j] = class
				}
				i += klen
				prevSep = false
				matched = true
				break
			}
			if matched {
				continue
			}
		}

		hl[i] = hlNormal
		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// updateSyntax recomputes render, hl and hlOpenComment for the row at index
// at, then cascades the recomputation forward to successor rows as long as
// their open-comment bit keeps changing. The cascade is an explicit loop
// rather than mutual recursion, per the design note on deep call stacks.
func updateSyntax(s *rowStore, syntax *editorSyntax, at int) {
	for at < len(s.rows) {
		r := &s.rows[at]
		r.updateRender()

		prevOpen := false
		if at > 0 {
			prevOpen = s.rows[at-1].hlOpenComment
		}

		hl, openComment := computeHighlight(syntax, r.render, prevOpen)
		r.hl = hl

		changed := r.hlOpenComment != openComment
		r.hlOpenComment = openComment

		if !changed {
			return
		}
		at++
	}
}

func syntaxToColor(hl byte) int {
	switch hl {
	case hlComment, hlMlComment:
		return 36
	case hlKeyword1:
		return 33
	case hlKeyword2:
		return 34
	case hlString:
		return 35
	case hlNumber:
		return 31
	case hlMatch:
		return 34
	default:
		return 37
	}
}

// selectSyntaxHighlight walks hldb looking for a pattern that matches
// filename: a leading "." pattern matches the final extension exactly,
// anything else matches as a substring anywhere in the filename. The first
// match wins.
func selectSyntaxHighlight(filename string) *editorSyntax {
	if filename == "" {
		return nil
	}
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	for i := range hldb {
		s := &hldb[i]
		for _, pattern := range s.filematch {
			if strings.HasPrefix(pattern, ".") {
				if pattern == ext {
					return s
				}
				continue
			}
			if strings.Contains(base, pattern) {
				return s
			}
		}
	}
	return nil
}
