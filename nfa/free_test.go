package nfa

import (
	"testing"

	"github.com/digideskio/sonavara/syntax"
)

func TestFreeSeversEdges(t *testing.T) {
	toks, err := syntax.Parse("ab")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	start, _, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if start.Out == nil {
		t.Fatal("expected the compiled graph to have an outgoing edge before Free")
	}
	Free(start)
	if start.Out != nil || start.Out1 != nil {
		t.Error("Free should sever every edge on the start state")
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	toks, err := syntax.Parse("a*b+c?")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	start, _, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	Free(start)
	Free(start) // must not panic on an already-severed graph
}

func TestFreeDoesNotTouchMatchState(t *testing.T) {
	toks, err := syntax.Parse("x")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	start, _, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	Free(start)
	if MatchState.Kind != KindMatch {
		t.Fatal("the shared MatchState must survive Free unconditionally")
	}
}

func TestFreeOnCyclicGraph(t *testing.T) {
	// a* and a+ both produce a Split whose body loops back into it,
	// forming a cycle; Free's mark pass must terminate regardless.
	toks, err := syntax.Parse("(a|b)*c")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	start, _, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	Free(start)
}

func TestFreeNilIsSafe(t *testing.T) {
	Free(nil)
}

func TestFreeOnReconvergingPaths(t *testing.T) {
	// Both alternatives of (a|b) patch their dangling edge to the same
	// following atom, so that atom has two incoming edges even though the
	// graph has no cycle. The mark pass must cut one of them rather than
	// visiting (and double-freeing) the shared state twice.
	toks, err := syntax.Parse("(a|b)c")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	start, _, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	Free(start)
	if start.Out != nil || start.Out1 != nil {
		t.Error("Free should sever every edge on the start state")
	}
}
