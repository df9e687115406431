package scapegoat

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/scapegoat/bst"
)

type nodeids[K any] struct {
	idTable map[*bst.Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*bst.Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *bst.Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *bst.Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are visited breadth-first; every missing
// child is drawn as a small dot, thus left and right children are always
// distinguishable.
//
// Clients usually call it as
//
//	Tree2Dot(tree.Root(), w)
//
// An empty tree (root == nil) results in an empty graph.
func Tree2Dot[K any](root *bst.Node[K], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K]()
	nilcount := 0
	emptyChild := func(parentID int) {
		nilcount++
		fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilcount, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", parentID, nilcount)
	}
	queue := []*bst.Node[K]{}
	if root != nil {
		queue = append(queue, root)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", ID, fmt.Sprint(node.Key()), nodeDotStyles(node))
		for _, child := range [2]*bst.Node[K]{node.Left(), node.Right()} {
			if child == nil {
				emptyChild(ID)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			queue = append(queue, child)
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("digraph G {\n")
	write("\tgraph [ordering=\"out\"];\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",shape=point]"
}

func nodeDotStyles[K any](node *bst.Node[K]) string {
	s := ",style=filled"
	if node.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
