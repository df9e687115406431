package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/scapegoat/bst"
	"github.com/npillmayer/scapegoat/wordset"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var sampleKeys = []string{"d", "b", "a", "c", "f", "e", "g"}

func seqString(seq func(func(string) bool)) string {
	var b strings.Builder
	for k := range seq {
		b.WriteString(k)
	}
	return b.String()
}

// traverseDemo builds the sample tree once for every key, prints its
// traversals, removes the key and prints what is left. It finishes by
// balancing a degenerate tree.
func traverseDemo(w io.Writer) error {
	for _, r := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tree := bst.NewOrdered[string]()
		for _, k := range sampleKeys {
			if err := tree.Add(k); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "in-order:   %s\n", seqString(tree.Inorder()))
		fmt.Fprintf(w, "pre-order:  %s\n", seqString(tree.Preorder()))
		fmt.Fprintf(w, "post-order: %s\n", seqString(tree.Postorder()))
		removed, err := tree.Remove(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "remove %s:   %v\n", r, removed)
		fmt.Fprintf(w, "in-order:   %s\n", seqString(tree.Inorder()))
	}
	tree := bst.NewOrdered[string]()
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		if err := tree.Add(k); err != nil {
			return err
		}
	}
	stats := color.New(color.FgCyan)
	stats.Fprintf(w, "size=%d height=%d balanced=%v\n", tree.Size(), tree.Height(), tree.IsBalanced())
	tree.Balance()
	stats.Fprintf(w, "size=%d height=%d balanced=%v\n", tree.Size(), tree.Height(), tree.IsBalanced())
	return nil
}

func dotDemo(keys []string, w io.Writer) error {
	if len(keys) == 0 {
		keys = sampleKeys
	}
	tree := scapegoat.NewOrdered[string]()
	for _, k := range keys {
		if err := tree.Add(k); err != nil {
			return err
		}
	}
	return scapegoat.Tree2Dot(tree.Root(), w)
}

func wordsCommand(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("words: expected exactly one FILE argument")
	}
	name := cctx.Args().First()
	cfg := wordset.Config{FoldCase: cctx.Bool("fold"), KeepDuplicates: cctx.Bool("dups")}
	var tree *scapegoat.Tree[string]
	var err error
	if cctx.Bool("html") {
		var f *os.File
		if f, err = os.Open(name); err != nil {
			return err
		}
		defer f.Close()
		tree, err = wordset.LoadHTML(f, cfg)
	} else {
		tree, err = wordset.LoadFile(name, cfg)
	}
	if err != nil {
		return err
	}
	printColumns(tree, terminalWidth(), cctx.App.Writer)
	return nil
}

// terminalWidth returns the width of stdout if it is a terminal, 80 otherwise.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// printColumns lists the words of tree alphabetically, column-wise in rows
// no wider than width, followed by a line of tree statistics.
func printColumns(tree *scapegoat.Tree[string], width int, w io.Writer) {
	colwidth := 1
	var words []string
	for word := range tree.Inorder() {
		words = append(words, word)
		colwidth = max(colwidth, utf8.RuneCountInString(word)+2)
	}
	cols := max(1, width/colwidth)
	rows := (len(words) + cols - 1) / cols
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			line.WriteString(words[i])
			line.WriteString(strings.Repeat(" ", colwidth-utf8.RuneCountInString(words[i])))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	color.New(color.FgGreen).Fprintf(w, "%d words, height %d, max size %d\n",
		tree.Size(), tree.Height(), tree.MaxSizeSeen())
}
