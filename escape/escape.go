package escape

import (
	"github.com/msaf1980/go-stringutils"
)

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether the byte must be percent-escaped inside
// a query component. Only the RFC 3986 unreserved set passes through.
func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~':
		return false
	}
	return true
}

// Query escapes the string so it can be safely placed inside a URL
// query component. Space becomes %20 (never '+'), non-ASCII is escaped
// UTF-8 byte-wise, hex digits are uppercase.
func Query(s string) string {
	var sb stringutils.Builder
	return QueryTo(s, &sb)
}

// QueryTo escapes like Query, writing through sb. The builder may be
// reused across calls to avoid allocations; the returned string stays
// valid until the builder is reset.
func QueryTo(s string, sb *stringutils.Builder) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	pos := sb.Len()
	sb.Grow(pos + len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		} else {
			sb.WriteByte(c)
		}
	}

	return sb.String()[pos:]
}
