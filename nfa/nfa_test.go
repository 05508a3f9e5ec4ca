package nfa

import (
	"testing"

	"github.com/digideskio/sonavara/syntax"
)

func compileOrFatal(t *testing.T, pattern string) (*State, uint32) {
	t.Helper()
	toks, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	start, n, err := Compile(toks, 0)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return start, n
}

func TestIsMatchLiteral(t *testing.T) {
	start, n := compileOrFatal(t, "abc")
	if !IsMatch(start, n, []byte("abc")) {
		t.Error("abc should match abc")
	}
	if IsMatch(start, n, []byte("ab")) {
		t.Error("ab should not match abc")
	}
	if IsMatch(start, n, []byte("abcd")) {
		t.Error("abcd should not fully match abc")
	}
}

func TestIsMatchAlternation(t *testing.T) {
	start, n := compileOrFatal(t, "cat|dog")
	for _, in := range []string{"cat", "dog"} {
		if !IsMatch(start, n, []byte(in)) {
			t.Errorf("%q should match cat|dog", in)
		}
	}
	if IsMatch(start, n, []byte("cow")) {
		t.Error("cow should not match cat|dog")
	}
}

func TestIsMatchStar(t *testing.T) {
	start, n := compileOrFatal(t, "a*")
	for _, in := range []string{"", "a", "aaaa"} {
		if !IsMatch(start, n, []byte(in)) {
			t.Errorf("%q should match a*", in)
		}
	}
	if IsMatch(start, n, []byte("b")) {
		t.Error("b should not match a*")
	}
}

func TestIsMatchPlus(t *testing.T) {
	start, n := compileOrFatal(t, "a+")
	if IsMatch(start, n, []byte("")) {
		t.Error("empty string should not match a+")
	}
	if !IsMatch(start, n, []byte("aaa")) {
		t.Error("aaa should match a+")
	}
}

func TestIsMatchAmbiguousAlternation(t *testing.T) {
	// The classic case that defeats naive greedy backtracking: simulating
	// every thread in parallel must still find the longer alternative.
	start, n := compileOrFatal(t, "a|ab")
	if !IsMatch(start, n, []byte("ab")) {
		t.Error("ab should match a|ab in full")
	}
}

func TestMatchPrefixLongest(t *testing.T) {
	start, n := compileOrFatal(t, "a|ab")
	length, ok := MatchPrefix(start, n, []byte("abc"))
	if !ok {
		t.Fatal("expected a match")
	}
	if length != 2 {
		t.Errorf("MatchPrefix length = %d, want 2 (the longer alternative)", length)
	}
}

func TestMatchPrefixNoMatch(t *testing.T) {
	start, n := compileOrFatal(t, "xyz")
	_, ok := MatchPrefix(start, n, []byte("abc"))
	if ok {
		t.Error("expected no accepting prefix")
	}
}

func TestMatchPrefixEmptyAccept(t *testing.T) {
	start, n := compileOrFatal(t, "a*")
	length, ok := MatchPrefix(start, n, []byte("bbb"))
	if !ok || length != 0 {
		t.Errorf("MatchPrefix(a*, \"bbb\") = (%d, %v), want (0, true)", length, ok)
	}
}

func TestCompileMaxStates(t *testing.T) {
	toks, err := syntax.Parse("a{1,50}")
	if err != nil {
		t.Fatalf("syntax.Parse: %v", err)
	}
	if _, _, err := Compile(toks, 5); err == nil {
		t.Fatal("expected a BuildError when the expansion exceeds MaxStates")
	}
}

func TestCompileMalformedTokenStream(t *testing.T) {
	_, _, err := Compile(syntax.Tokens{{Kind: syntax.Concat}}, 0)
	if err == nil {
		t.Fatal("expected a BuildError for an operator with no operand")
	}
}
