/*
Command sgdemo exercises scapegoat trees from the command line.

	sgdemo traverse              run the traversal and deletion demo
	sgdemo words [--html] FILE   print the vocabulary of a document
	sgdemo dot KEY...            print a tree of KEYs in Graphviz DOT format

Global flags select the trace level (Error, Info, Debug) and whether output
is colored.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "sgdemo",
		Usage: "demonstrate scapegoat trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level: Error, Info or Debug",
				Value:   "Error",
				EnvVars: []string{"SGDEMO_TRACE"},
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colorize output: auto, always or never",
				Value: "auto",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:  "traverse",
				Usage: "insert d b a c f e g, traverse, remove each key in turn, then balance",
				Action: func(cctx *cli.Context) error {
					return traverseDemo(cctx.App.Writer)
				},
			},
			{
				Name:      "words",
				Usage:     "print the distinct words of a text or HTML file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "html", Usage: "parse FILE as HTML regardless of its extension"},
					&cli.BoolFlag{Name: "fold", Usage: "fold words to lower case"},
					&cli.BoolFlag{Name: "dups", Usage: "keep duplicate words"},
				},
				Action: wordsCommand,
			},
			{
				Name:      "dot",
				Usage:     "insert keys into a scapegoat tree and print it in DOT format",
				ArgsUsage: "KEY...",
				Action: func(cctx *cli.Context) error {
					return dotDemo(cctx.Args().Slice(), cctx.App.Writer)
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("sgdemo: %v", err))
		os.Exit(1)
	}
}

// setup installs a Go-logger based tracer for all packages and decides on
// colored output.
func setup(cctx *cli.Context) error {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("scapegoat").SetTraceLevel(tracing.TraceLevelFromString(cctx.String("trace")))
	switch cctx.String("color") {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("invalid value for --color: %q", cctx.String("color"))
	}
	return nil
}
