package escape

import (
	"strings"

	"github.com/msaf1980/go-stringutils"
)

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isPercentEscape(s string, i int) bool {
	return i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2])
}

func unescape(s string, first int, sb *stringutils.Builder) (string, error) {
	pos := sb.Len()
	sb.Grow(pos + len(s))
	sb.WriteString(s[:first])

	for i := first; i < len(s); i++ {
		switch s[i] {
		case '%':
			if !isPercentEscape(s, i) {
				frag := s[i:]
				if len(frag) > 3 {
					frag = frag[:3]
				}
				return "", &InvalidEscapeError{Pos: i, Escape: frag}
			}
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case '+':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(s[i])
		}
	}

	return sb.String()[pos:], nil
}

// Unescape decodes percent escapes and turns '+' into a space. Decoded
// bytes are kept as-is: a sequence that is not valid UTF-8 comes back
// byte-for-byte, never replaced. A '%' not followed by two hex digits
// fails the whole input with *InvalidEscapeError.
func Unescape(s string) (string, error) {
	var sb stringutils.Builder
	return UnescapeTo(s, &sb)
}

// UnescapeTo decodes like Unescape, writing through sb. The builder may
// be reused across calls; after an error its contents are undefined and
// it should be reset before reuse.
func UnescapeTo(s string, sb *stringutils.Builder) (string, error) {
	first := strings.IndexAny(s, "%+")
	if first == -1 {
		return s, nil
	}

	return unescape(s, first, sb)
}
