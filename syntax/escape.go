package syntax

// decodeEscape interprets the escape body starting at pattern[pos], the
// byte immediately following a backslash, and returns the decoded value
// together with the index of the last byte it consumed. The caller is
// expected to resume scanning at the next byte after that (exactly the
// pointer-trick the original C tokeniser uses: advance internally, then
// step back one so the enclosing loop's own advance lands in the right
// place).
func decodeEscape(pattern []byte, pos int) (byte, int) {
	c := pattern[pos]

	switch {
	case c >= '0' && c <= '7':
		v := 0
		for i := 0; i < 3 && pos < len(pattern) && pattern[pos] >= '0' && pattern[pos] <= '7'; i++ {
			v = v*8 + int(pattern[pos]-'0')
			pos++
		}
		return byte(v), pos - 1

	case c == 'x':
		pos++
		v := 0
		for i := 0; i < 2 && pos < len(pattern) && isHexDigit(pattern[pos]); i++ {
			v = v*16 + hexVal(pattern[pos])
			pos++
		}
		return byte(v), pos - 1

	default:
		return namedEscape(c), pos
	}
}

// namedEscape maps the single letter escapes to their byte value. An
// unrecognised letter escapes to itself, so "\." means a literal '.'.
func namedEscape(c byte) byte {
	switch c {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	default:
		return c
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
