package wordset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	text := "the quick brown fox jumps over the lazy dog"
	tree, err := Load(strings.NewReader(text), Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"brown", "dog", "fox", "jumps", "lazy", "over", "quick", "the"}
	if got := slices.Collect(tree.Inorder()); !slices.Equal(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadKeepsDuplicates(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	tree, err := Load(strings.NewReader(text), Config{KeepDuplicates: true})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 9 {
		t.Errorf("size = %d, want 9", tree.Size())
	}
}

func TestLoadStripsPunctuationAndFoldsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	text := "Hello, World! hello world. (World)"
	tree, err := Load(strings.NewReader(text), Config{FoldCase: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello", "world"}
	if got := slices.Collect(tree.Inorder()); !slices.Equal(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
	tree, _ = Load(strings.NewReader(text), Config{})
	if found, _ := tree.Contains("Hello"); !found {
		t.Errorf("expected case to be preserved without folding")
	}
}

func TestLoadEmptyInput(t *testing.T) {
	tree, err := Load(strings.NewReader(""), Config{})
	if err != nil || !tree.IsEmpty() {
		t.Errorf("expected empty tree, have %v, %v", tree, err)
	}
	if _, err := Load(nil, Config{}); !errors.Is(err, scapegoat.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil reader, got %v", err)
	}
}

func TestLoadHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	doc := `<p>Alpha <b>beta</b></p><script>var gamma = 1;</script><div>delta<i>epsilon</i></div>`
	tree, err := LoadHTML(strings.NewReader(doc), Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Alpha", "beta", "delta", "epsilon"}
	if got := slices.Collect(tree.Inorder()); !slices.Equal(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "words.htm")
	if err := os.WriteFile(name, []byte("<p>one two</p><style>p{}</style>"), 0o600); err != nil {
		t.Fatal(err)
	}
	tree, err := LoadFile(name, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(tree.Inorder()); !slices.Equal(got, []string{"one", "two"}) {
		t.Errorf("words = %v", got)
	}
	if _, err := LoadFile(dir, Config{}); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.txt"), Config{}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
