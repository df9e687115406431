package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTraverseDemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	color.NoColor = true
	//
	var sb strings.Builder
	if err := traverseDemo(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"pre-order:  dbacfeg",
		"post-order: acbegfd",
		"remove d:   true",
		"in-order:   abcefg",
		"size=7 height=6 balanced=false",
		"size=7 height=2 balanced=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestDotDemo(t *testing.T) {
	var sb strings.Builder
	if err := dotDemo([]string{"m", "c", "x"}, &sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `label="m"`) || strings.Count(sb.String(), "->") != 6 {
		t.Errorf("unexpected DOT output:\n%s", sb.String())
	}
}

func TestPrintColumns(t *testing.T) {
	color.NoColor = true
	tree := scapegoat.NewOrdered[string]()
	for _, w := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		_ = tree.Add(w)
	}
	var sb strings.Builder
	printColumns(tree, 20, &sb)
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	// 9 runes per column, two columns of three rows plus statistics
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, have %d:\n%s", len(lines), sb.String())
	}
	if lines[0] != "alpha    epsilon" {
		t.Errorf("first row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "5 words") {
		t.Errorf("statistics line = %q", lines[3])
	}
}
