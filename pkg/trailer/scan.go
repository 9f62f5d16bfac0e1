package trailer

import "strings"

// Line primitives over raw message bytes. Offsets index into buf; the end of
// the slice plays the role of the NUL terminator in the scanning contracts,
// so callers pass subslices rather than explicit lengths where possible.

// isSpace reports ASCII whitespace, matching C's isspace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isBlankLine reports whether the line starting at pos contains only
// whitespace before its newline or the end of buf.
func isBlankLine(buf []byte, pos int) bool {
	i := pos
	for i < len(buf) && buf[i] != '\n' && isSpace(buf[i]) {
		i++
	}
	return i >= len(buf) || buf[i] == '\n'
}

// nextLine returns the offset just past the next newline, or len(buf) when no
// newline remains. len(buf) is a fixed point, so scans must check for it.
func nextLine(buf []byte, pos int) int {
	for i := pos; i < len(buf); i++ {
		if buf[i] == '\n' {
			return i + 1
		}
	}
	return len(buf)
}

// lastLine returns the start offset of the final line in buf[:length], or -1
// when length is zero. The scan starts at length-2: a trailing newline is
// part of the line it ends, not a line of its own.
func lastLine(buf []byte, length int) int {
	if length == 0 {
		return -1
	}
	if length == 1 {
		return 0
	}
	for i := length - 2; i >= 0; i-- {
		if buf[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// findSeparator scans the line starting at pos for the shape
// "<key><optional whitespace><separator>..." and returns the separator's
// offset within the line, or -1 when the line does not match. The key is a
// run of alphanumerics and hyphens; a single run of spaces or tabs (not at
// the line start) is tolerated between key and separator so that lines like
// "Bug #43" can match with "#" configured as a separator.
//
// A separator at offset 0 returns 0, which callers distinguish from the
// malformed-line -1: the boundary scan requires an offset >= 1 while the
// tokenizer does not.
func findSeparator(buf []byte, pos int, separators string) int {
	whitespaceFound := false
	for i := pos; i < len(buf); i++ {
		c := buf[i]
		if strings.IndexByte(separators, c) >= 0 {
			return i - pos
		}
		if !whitespaceFound && (isAlnum(c) || c == '-') {
			continue
		}
		if i != pos && (c == ' ' || c == '\t') {
			whitespaceFound = true
			continue
		}
		break
	}
	return -1
}
