// Package main is the main entrypoint to the redeggs application.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dhbw-cocon-spring25/redeggs/src/conf"
	"github.com/dhbw-cocon-spring25/redeggs/src/parse"
	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

var (
	parsePattern string
	showVersion  bool
)

func init() {
	flag.StringVar(&parsePattern, "e", "", "parse the pattern 'pat' and print its tree")
	flag.BoolVar(&showVersion, "v", false, "show version information")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		checkErr(err)
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			parseSrc(line)
		}
	} else if parsePattern != "" {
		parseSrc(parsePattern)
	} else if args := flag.Args(); len(args) > 0 {
		for _, pattern := range args {
			parseSrc(pattern)
		}
	} else {
		checkErr(runREPL())
	}
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: redeggs [options] [pattern ...]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func parseSrc(pattern string) {
	node, err := parse.New(symbol.NewFactory()).Parse(pattern)
	checkErr(err)
	fmt.Fprintf(os.Stdout, "%v\n", node)
}

// runREPL reads patterns line by line and prints the parsed tree or the
// parse error for each of them.
func runREPL() error {
	printVersion()
	p := parse.New(symbol.NewFactory())
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		node, err := p.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%v\n", node)
	}
}
