package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/lang"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'chomsky.cli'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cli")
}

// main() starts cnfconv, a small terminal front end for converting
// context-free grammars into Chomsky Normal Form. Without arguments it goes
// into interactive mode: users enter production lines one by one, then issue
// ':convert' to see each transformation stage plus the final CNF grammar.
// With '-f grammar.txt' it converts the file and exits.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	gfile := flag.String("f", "", "Grammar file to convert (non-interactive)")
	flag.Parse()
	tracing.Select("chomsky.cfg").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracing.Select("chomsky.nf").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	if *gfile != "" {
		data, err := ioutil.ReadFile(*gfile)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if !convert(string(data)) {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to cnfconv")
	pterm.Info.Println("Enter productions like  S -> A B | a  then ':convert'; ':help' lists commands")
	repl, err := readline.New("cnf> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is the interactive interpreter: it accumulates production lines and
// executes ':'-commands on them.
type Intp struct {
	repl  *readline.Instance
	lines []string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single REPL line: either a command or a production line.
func (intp *Intp) Execute(line string) bool {
	if !strings.HasPrefix(line, ":") {
		intp.lines = append(intp.lines, line)
		return false
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":reset":
		intp.lines = nil
		pterm.Info.Println("grammar cleared")
	case ":show":
		for _, l := range intp.lines {
			pterm.Println(l)
		}
	case ":convert", ":c":
		convert(strings.Join(intp.lines, "\n"))
	case ":words":
		maxlen := 4
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				maxlen = n
			}
		}
		intp.words(maxlen)
	case ":help", ":h":
		pterm.Println(":convert     run the five normalization stages and print each snapshot")
		pterm.Println(":words [n]   list words of the language up to length n (default 4)")
		pterm.Println(":show        print the accumulated production lines")
		pterm.Println(":reset       discard the accumulated production lines")
		pterm.Println(":quit        leave cnfconv")
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q", args[0]))
	}
	return false
}

// convert runs the full conversion and renders every stage snapshot plus
// the final CNF grammar.
func convert(text string) bool {
	cnf, steps, err := chomsky.Convert(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	for _, step := range steps {
		pterm.Info.Println(step.Label)
		pterm.Println(step.Grammar.Text())
	}
	pterm.Info.Println("Chomsky Normal Form")
	pterm.Println(cnf.Text())
	return true
}

// words parses the accumulated grammar and lists a bounded sample of its
// language.
func (intp *Intp) words(maxlen int) {
	g, err := cfg.Parse(strings.Join(intp.lines, "\n"))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	ws := lang.Words(g, maxlen, 50)
	if len(ws) == 0 {
		pterm.Info.Println("no words within the given limits")
		return
	}
	for _, w := range ws {
		if w == "" {
			w = "ε"
		}
		pterm.Println(w)
	}
}
