package wordset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// ErrNotRegular is flagged by LoadFile for directories, devices and the like.
var ErrNotRegular = errors.New("wordset: not a regular file")

// Config controls how words are entered into the tree.
type Config struct {
	FoldCase       bool // fold words to a caseless form before inserting
	KeepDuplicates bool // insert every occurrence, not just the first one
}

// Load reads UTF-8 text from r and returns a tree of the words found.
// An empty input results in an empty tree.
func Load(r io.Reader, cfg Config) (*scapegoat.Tree[string], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", scapegoat.ErrInvalidArgument)
	}
	tree := scapegoat.NewOrdered[string]()
	if err := collectWords(r, tree, cfg); err != nil {
		return nil, err
	}
	return tree, nil
}

// LoadHTML extracts the text content of an HTML fragment and returns a tree
// of its words. Content of <script> and <style> elements is skipped.
func LoadHTML(r io.Reader, cfg Config) (*scapegoat.Tree[string], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", scapegoat.ErrInvalidArgument)
	}
	nodes, err := html.ParseFragment(r, nil)
	if err != nil {
		return nil, err
	}
	var text strings.Builder
	for _, n := range nodes {
		collectText(n, &text)
	}
	return Load(strings.NewReader(text.String()), cfg)
}

// LoadFile opens a text or HTML file and returns a tree of its words.
// Files with extension .html or .htm are loaded with LoadHTML, all others
// with Load.
func LoadFile(name string, cfg Config) (*scapegoat.Tree[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Debugf("loading words from %s (%d bytes)", name, fi.Size())
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return LoadHTML(f, cfg)
	}
	return Load(f, cfg)
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ') // text of adjacent elements must not run together
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func collectWords(r io.Reader, tree *scapegoat.Tree[string], cfg Config) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	folder := cases.Fold()
	count := 0
	for segmenter.Next() {
		word := strings.TrimFunc(string(segmenter.Bytes()), isSeparator)
		if word == "" {
			continue
		}
		if cfg.FoldCase {
			word = folder.String(word)
		}
		count++
		if !cfg.KeepDuplicates {
			if found, _ := tree.Contains(word); found {
				continue
			}
		}
		if err := tree.Add(word); err != nil {
			return err
		}
	}
	tracer().Infof("wordset: %d words read, %d entered", count, tree.Size())
	return nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
