// Command svlex-dump lexes one or more SystemVerilog source files (or
// stdin) and prints the resulting token stream, each token as a
// pretty-printed dump (or, with -keywords, one line for a keyword
// identifier), followed on stderr by any diagnostics collected along the way.
//
// Grounded on codf's demo/demo.go, upgraded to flag-based arguments.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"go.svlex.dev/svlex"
	"go.svlex.dev/svlex/facts"
)

func main() {
	log.SetFlags(log.Lshortfile)

	showKeywords := flag.Bool("keywords", false, "annotate identifiers that are reserved keywords")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		dump(1, "stdin", os.Stdin, *showKeywords)
		return
	}
	for i, path := range args {
		dumpFile(svlex.FileHandle(i+1), path, *showKeywords)
	}
}

func dumpFile(file svlex.FileHandle, path string, showKeywords bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	defer f.Close()
	dump(file, filepath.Base(path), f, showKeywords)
}

func dump(file svlex.FileHandle, name string, r io.Reader, showKeywords bool) {
	arena := svlex.NewArena()
	sink := svlex.NewSliceSink()

	lexer, err := svlex.NewLexerFromReader(file, r, arena, sink)
	if err != nil {
		log.Fatalf("%s: error reading source: %v", name, err)
	}

	fmt.Printf("-- %s --\n", name)
	for {
		tok := lexer.Lex()
		printToken(tok, showKeywords)
		if tok.Kind == svlex.EndOfFile {
			break
		}
	}

	if len(sink.Diagnostics) > 0 {
		fmt.Fprintf(os.Stderr, "-- %s: diagnostics --\n", name)
		for _, d := range sink.Diagnostics {
			fmt.Fprintf(os.Stderr, "  %s\n", d)
		}
	}
}

func printToken(tok svlex.Token, showKeywords bool) {
	if showKeywords {
		if info, ok := tok.Payload.(*svlex.IdentifierInfo); ok && facts.IsKeyword(string(info.Raw)) {
			fmt.Printf("%v %s %q (keyword)\n", tok.Start, tok.Kind, tok.Text())
			return
		}
	}
	fmt.Printf("%v %s %# v\n", tok.Start, tok.Kind, pretty.Formatter(tok))
}
