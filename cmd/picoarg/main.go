package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/sro5h/picoarg"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	parser := picoarg.New(picoarg.Output(io.Discard))
	parser.Add('h', false)
	parser.Add('v', false)
	parser.Add('f', true)

	if err := parser.Parse(os.Args); err != nil {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if parser.Has('h') {
		fmt.Printf("usage: %s [OPTION]\n", program)
		fmt.Println("  -v        show version information")
		fmt.Println("  -f<file>  process <file>")
		return
	}

	if parser.Has('v') {
		fmt.Printf("version %s\n", version)
	}

	for parser.Has('f') {
		fmt.Printf("processing %q\n", parser.PopValue('f'))
	}
}
