/*
Package wordset collects the vocabulary of a document into a scapegoat tree.

Text is broken into words with the Unicode line breaking algorithm (UAX #14),
as implemented by package github.com/npillmayer/uax. Leading and trailing
spaces and punctuation are stripped from every word. HTML input is reduced
to its text content before segmentation.

The resulting tree holds every distinct word once, unless configured to keep
duplicates. Iterating the tree in-order yields the words alphabetically.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package wordset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}
