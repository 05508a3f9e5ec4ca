package syntax

// posixClass is one named [:name:] predicate. Membership is the ASCII
// ("C" locale) definition: bytes above 0x7f are never members, matching
// the ctype.h behaviour the original tokeniser relied on.
type posixClass struct {
	name string
	fn   func(byte) bool
}

var posixClasses = []posixClass{
	{"alnum", isPosixAlnum},
	{"alpha", isPosixAlpha},
	{"blank", isPosixBlank},
	{"cntrl", isPosixCntrl},
	{"digit", isPosixDigit},
	{"graph", isPosixGraph},
	{"lower", isPosixLower},
	{"print", isPosixPrint},
	{"punct", isPosixPunct},
	{"space", isPosixSpace},
	{"upper", isPosixUpper},
	{"xdigit", isPosixXDigit},
}

func isPosixAlpha(b byte) bool { return isPosixLower(b) || isPosixUpper(b) }
func isPosixDigit(b byte) bool { return b >= '0' && b <= '9' }
func isPosixAlnum(b byte) bool { return isPosixAlpha(b) || isPosixDigit(b) }
func isPosixLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isPosixUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isPosixBlank(b byte) bool { return b == ' ' || b == '\t' }
func isPosixCntrl(b byte) bool { return b < 0x20 || b == 0x7f }
func isPosixSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
func isPosixPrint(b byte) bool { return b >= 0x20 && b < 0x7f }
func isPosixGraph(b byte) bool { return isPosixPrint(b) && b != ' ' }
func isPosixPunct(b byte) bool { return isPosixGraph(b) && !isPosixAlnum(b) }
func isPosixXDigit(b byte) bool { return isPosixDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') }
