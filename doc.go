/*
Package scapegoat offers an ordered set of keys, organized as a scapegoat tree.

Scapegoat Trees

A scapegoat tree is a binary search tree which keeps its height logarithmic
without storing any balance information in its nodes. Insertions are done
as in an ordinary, unbalanced binary search tree. Only if a new node ends up
too deep in the tree, i.e. deeper than

	log_{3/2}(n)

for n being the largest size the tree has reached since its last complete
rebuild, a repair happens: walking upwards from the new node, the first
ancestor with a child holding more than 2/3 of the ancestor's nodes is
selected as the “scapegoat”. The subtree rooted at the scapegoat is then
rebuilt to perfect balance. Deletions never repair locally; if the tree has
shrunk to less than half of its historical maximum size, it is rebuilt as a
whole.

Scapegoat trees were introduced by Igal Galperin and Ronald L. Rivest
(“Scapegoat Trees”, SODA 1993). Apart from the root pointer, the only extra
state needed is the number of nodes and the maximum number of nodes since
the last complete rebuild. Insertion and deletion cost O(log n) amortized.

_________________________________________________________________________

Package scapegoat builds upon package bst, which provides the unbalanced
tree and its structural primitives. Nodes never hold parent links; ancestors
are found by descending from the root.

Trees are not safe for concurrent use. Clients needing concurrent access
have to serialize calls, e.g. with a sync.Mutex.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package scapegoat

import (
	"github.com/npillmayer/scapegoat/bst"
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'scapegoat'.
func T() tracing.Trace {
	return tracing.Select("scapegoat")
}

// Errors are shared with package bst, so clients may test with errors.Is
// against either name.
var (
	// ErrInvalidConfig is flagged for a tree configuration without comparator.
	ErrInvalidConfig = bst.ErrInvalidConfig
	// ErrInvalidArgument is flagged whenever an absent key (or a nil tree)
	// is handed to an operation.
	ErrInvalidArgument = bst.ErrInvalidArgument
	// ErrInvariantViolation is flagged if the tree structure is found to be
	// corrupt. It should never happen.
	ErrInvariantViolation = bst.ErrInvariantViolation
)
