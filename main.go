package main

import (
	"bufio"
	"flag"
	"log"
	"os"
)

func main() {
	var filenameFlag string
	flag.StringVar(&filenameFlag, "filename", "", "file to open")
	flag.Parse()

	filename := filenameFlag
	if filename == "" && flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	stdinFd := int(os.Stdin.Fd())
	term, err := enableRawMode(stdinFd)
	if err != nil {
		log.Fatal(err)
	}
	defer term.restore()

	in := bufio.NewReader(os.Stdin)

	rows, cols, err := windowSize(stdinFd, in)
	if err != nil {
		die(term, err)
	}

	e := newEditorConfig(rows, cols)

	if filename != "" {
		if err := editorOpen(e, filename); err != nil {
			die(term, err)
		}
	}

	e.setStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	resizeCh := watchResize()

	for {
		drainResize(resizeCh, e, in)
		editorRefreshScreen(e)
		quit, err := editorProcessKeypress(e, in)
		if err != nil {
			die(term, err)
		}
		if quit {
			break
		}
	}

	os.Stdout.WriteString("\x1b[2J")
	os.Stdout.WriteString("\x1b[H")
}
