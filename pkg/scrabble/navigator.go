package scrabble

import (
	"strings"
)

// Make sure the MatchNavigator implements the Navigator interface
var _ Navigator = (*MatchNavigator)(nil)

// Navigator is an interface that describes behaviors that control the
// navigation of a Dawg
type Navigator interface {
	IsAccepting() bool
	Accepts(letter byte) bool
	Accept(matched string, isWord bool)
	PushEdge(letter byte) bool
	PopEdge() bool
}

// MatchNavigator collects the words fitting a pattern in which
// matchAny stands for any letter
type MatchNavigator struct {
	pattern []byte
	index   int
	stack   []int
	results []string
}

type Navigation struct {
	dawg      *DAWG
	navigator Navigator
}

const matchAny = '*'

// Init resets the navigator for a new pattern
func (mn *MatchNavigator) Init(pattern string) {
	mn.pattern = []byte(strings.ToLower(pattern))
	mn.index = 0
	mn.stack = make([]int, 0, len(mn.pattern))
	mn.results = nil
}

// Results returns the words found, in dictionary order
func (mn *MatchNavigator) Results() []string {
	return mn.results
}

func (mn *MatchNavigator) fits(c byte) bool {
	if mn.index >= len(mn.pattern) {
		return false
	}
	p := mn.pattern[mn.index]
	return p == matchAny || p == c
}

func (mn *MatchNavigator) PushEdge(c byte) bool {
	if !mn.fits(c) {
		return false
	}
	mn.stack = append(mn.stack, mn.index)
	return true
}

// PopEdge restores the position in the pattern. Only a wildcard
// position can match a sibling edge as well.
func (mn *MatchNavigator) PopEdge() bool {
	last := len(mn.stack) - 1
	mn.index = mn.stack[last]
	mn.stack = mn.stack[:last]
	return mn.pattern[mn.index] == matchAny
}

func (mn *MatchNavigator) IsAccepting() bool {
	return mn.index < len(mn.pattern)
}

func (mn *MatchNavigator) Accepts(c byte) bool {
	if !mn.fits(c) {
		return false
	}
	mn.index++
	return true
}

// Accept keeps the words that use up the whole pattern
func (mn *MatchNavigator) Accept(matched string, isWord bool) {
	if isWord && mn.index == len(mn.pattern) {
		mn.results = append(mn.results, matched)
	}
}

// Go starts a navigation on the DAWG using the given Navigator
func (nav *Navigation) Go(d *DAWG, navigator Navigator) {
	nav.dawg = d
	nav.navigator = navigator
	if navigator.IsAccepting() {
		nav.FromNode(d.Root(), "")
	}
}

// FromNode continues a navigation from a node in the DAWG,
// enumerating through outgoing edges until the navigator is
// satisfied
func (nav *Navigation) FromNode(n NodeID, matched string) {
	for _, e := range nav.dawg.Edges(n) {
		if e.Letter == Sentinel {
			continue
		}
		if nav.navigator.PushEdge(e.Letter) {
			nav.FromEdge(e, matched)
			if !nav.navigator.PopEdge() {
				break
			}
		}
	}
}

// FromEdge navigates along an edge in the DAWG. A word is complete
// when the edge leads to a node carrying the end-of-word sentinel.
func (nav *Navigation) FromEdge(e Edge, matched string) {
	navigator := nav.navigator
	if !navigator.Accepts(e.Letter) {
		return
	}
	matched += string(e.Letter)
	navigator.Accept(matched, nav.dawg.IsWordEnd(e.Child))
	if e.Child != NoNode && navigator.IsAccepting() {
		nav.FromNode(e.Child, matched)
	}
}
