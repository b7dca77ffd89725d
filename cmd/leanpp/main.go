// Command leanpp is a small front end over the pp package: it holds a
// built-in catalog of sample kernel terms (there is no surface parser in
// scope, per spec.md's Non-goals) and pretty-prints them either in one
// batch, with a progress bar, or interactively from a line-edited prompt.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/progressbar"
	"fortio.org/terminal"
	"fortio.org/version"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/env"
	"github.com/epfl-lara/lean/options"
	"github.com/epfl-lara/lean/pp"
	"github.com/epfl-lara/lean/typecheck"
)

var (
	width     = flag.Int("width", 80, "render width in columns")
	implicit  = flag.Bool("implicit", false, "show implicit arguments")
	unicode   = flag.Bool("unicode", true, "use unicode glyphs (off: ascii spellings)")
	universes = flag.Bool("universes", false, "show explicit universe annotations")
	beta      = flag.Bool("beta", false, "beta-reduce before printing")
	repl      = flag.Bool("repl", false, "interactive mode: read term names from a prompt")
)

func main() {
	os.Exit(run())
}

// run is main's body, split out so the fortio.org/testscript-driven golden
// test (main_test.go) can invoke it in-process under a re-exec'd binary
// without duplicating the flag/option wiring.
func run() int {
	cli.MinArgs = 0
	cli.MaxArgs = 1
	cli.ArgsHelp = "[term-name]"
	cli.Main()

	log.Infof("leanpp %s starting", version.Short())

	opts := options.Default()
	opts.Implicit = *implicit
	opts.Unicode = *unicode
	opts.Universes = *universes
	opts.Beta = *beta
	if overlaid, err := options.LoadEnvOverlay(opts); err != nil {
		log.Warnf("ignoring malformed PP_* environment overlay: %v", err)
	} else {
		opts = overlaid
	}

	e := env.NewMapEnv()
	printer := pp.New(e, typecheck.NullChecker{}, opts)

	switch {
	case *repl:
		runREPL(printer)
	case flag.NArg() == 1:
		name := flag.Arg(0)
		sample, ok := catalog[name]
		if !ok {
			log.Errf("unknown term %q, try -repl or one of: %s", name, catalogNames())
			return 1
		}
		printTerm(printer, name, sample)
	default:
		runBatch(printer)
	}
	return 0
}

func printTerm(printer *pp.Printer, name string, sample sampleTerm) {
	d := printer.Pretty(context.Background(), sample.term)
	fmt.Printf("%s : %s\n", name, doc.Render(d, *width))
}

// runBatch pretty-prints the whole catalog in deterministic order, driving
// a progress bar the way a real front end would over a file of many
// top-level declarations.
func runBatch(printer *pp.Printer) {
	names := catalogNames()
	bar := progressbar.NewBar(false, "printing")
	for i, name := range names {
		printTerm(printer, name, catalog[name])
		bar.Update(float64(i+1) / float64(len(names)))
	}
	bar.End()
}

// runREPL opens a line-edited prompt (fortio.org/terminal) and pretty-prints
// the catalog entry named on each line until EOF or "quit".
func runREPL(printer *pp.Printer) {
	term, err := terminal.Open(context.Background())
	if err != nil {
		log.Critf("could not open terminal: %v", err)
		return
	}
	defer term.Close()
	term.SetPrompt("leanpp> ")

	for {
		line, err := term.ReadLine()
		if err != nil {
			return
		}
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "list":
			fmt.Println(catalogNames())
			continue
		}
		sample, ok := catalog[line]
		if !ok {
			fmt.Printf("unknown term %q (try \"list\")\n", line)
			continue
		}
		printTerm(printer, line, sample)
	}
}
