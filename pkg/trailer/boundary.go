package trailer

import "bytes"

// Trailer block boundary detection. Three passes over the raw message:
//   1. findPatchStart: everything at or after a "---" line is patch content.
//   2. ignoreNonTrailer: trailing comments, blanks and "Conflicts:" blocks
//      immediately before the patch are peeled off the end.
//   3. findTrailerStart: a backward scan from the trailer end looks for the
//      blank line opening a paragraph that is either all trailers or holds a
//      recognized generated trailer plus at least 25% trailer-shaped lines.

var (
	patchMarker      = []byte("---")
	conflictsHeading = []byte("Conflicts:\n")
)

// findPatchStart returns the offset of the first line beginning with "---",
// or len(buf) when the message has no patch section.
func findPatchStart(buf []byte) int {
	for s := 0; s < len(buf); s = nextLine(buf, s) {
		if bytes.HasPrefix(buf[s:], patchMarker) {
			return s
		}
	}
	return len(buf)
}

// ignoreNonTrailer returns the number of bytes to drop from the tail of buf:
// the trailing run of comment lines, blank lines and "Conflicts:" blocks
// (including their tab-indented pathname lines). A run broken by any other
// line restarts from scratch.
func ignoreNonTrailer(buf []byte, commentChar byte) int {
	boc := 0 // beginning of the current trailing run; 0 means no run
	bol := 0
	inConflictsBlock := false

	for bol < len(buf) {
		next := bol
		for next < len(buf) && buf[next] != '\n' {
			next++
		}
		if next < len(buf) {
			next++
		}

		switch {
		case buf[bol] == commentChar || buf[bol] == '\n':
			if boc == 0 {
				boc = bol
			}
		case bytes.HasPrefix(buf[bol:], conflictsHeading):
			inConflictsBlock = true
			if boc == 0 {
				boc = bol
			}
		case inConflictsBlock && buf[bol] == '\t':
			// a pathname inside the conflicts block
		case boc != 0:
			// the previous line was not trailing comment after all
			boc = 0
			inConflictsBlock = false
		}
		bol = next
	}
	if boc != 0 {
		return len(buf) - boc
	}
	return 0
}

// findTrailerEnd returns the end of the trailer region within buf, i.e. the
// length of buf minus whatever trailing non-trailer material it carries.
func findTrailerEnd(buf []byte, commentChar byte) int {
	return len(buf) - ignoreNonTrailer(buf, commentChar)
}

// backscan accumulates the per-line tallies of the backward scan. Possible
// continuation lines (lines starting with whitespace) stay pending until a
// definitive line resolves them: a trailer claims them as its continuations,
// anything else folds them into the non-trailer count.
type backscan struct {
	trailerLines          int
	nonTrailerLines       int
	possibleContinuations int
	recognizedPrefix      bool
	onlySpaces            bool
}

func (b *backscan) foldContinuations() {
	b.nonTrailerLines += b.possibleContinuations
	b.possibleContinuations = 0
}

// accept reports whether the tallies describe a paragraph that qualifies as
// a trailer block: all trailers, or a recognized generated trailer with
// trailers making up at least a quarter of the classified lines.
func (b *backscan) accept() bool {
	if b.recognizedPrefix && b.trailerLines*3 >= b.nonTrailerLines {
		return true
	}
	return b.trailerLines > 0 && b.nonTrailerLines == 0
}

// findTrailerStart returns the offset of the first trailer line within buf,
// or len(buf) when there is no trailer block. buf must already be truncated
// to the trailer end.
func findTrailerStart(buf []byte, o options) int {
	// The first paragraph is the title and cannot hold trailers.
	s := 0
	for s < len(buf) {
		if buf[s] != o.commentChar && isBlankLine(buf, s) {
			break
		}
		s = nextLine(buf, s)
	}
	endOfTitle := s

	bs := backscan{onlySpaces: true}
	for l := lastLine(buf, len(buf)); l >= endOfTitle && l >= 0; l = lastLine(buf, l) {
		if buf[l] == o.commentChar {
			bs.foldContinuations()
			continue
		}
		if isBlankLine(buf, l) {
			if bs.onlySpaces {
				// still inside the trailing run of blank lines
				continue
			}
			bs.foldContinuations()
			if bs.accept() {
				return nextLine(buf, l)
			}
			return len(buf)
		}
		bs.onlySpaces = false

		if matchesGeneratedPrefix(buf[l:], o.generatedPrefixes) {
			bs.trailerLines++
			bs.possibleContinuations = 0
			bs.recognizedPrefix = true
			continue
		}

		switch sep := findSeparator(buf, l, o.separators); {
		case sep >= 1 && !isSpace(buf[l]):
			bs.trailerLines++
			bs.possibleContinuations = 0
		case isSpace(buf[l]):
			bs.possibleContinuations++
		default:
			bs.nonTrailerLines += 1 + bs.possibleContinuations
			bs.possibleContinuations = 0
		}
	}
	return len(buf)
}

func matchesGeneratedPrefix(line []byte, prefixes []string) bool {
	for _, p := range prefixes {
		if len(line) >= len(p) && string(line[:len(p)]) == p {
			return true
		}
	}
	return false
}

// locateBlock computes the [start, end) byte offsets of the trailer block
// within message. start == end means no block was detected.
func locateBlock(message []byte, o options) (start, end int) {
	patchStart := findPatchStart(message)
	end = findTrailerEnd(message[:patchStart], o.commentChar)
	start = findTrailerStart(message[:end], o)
	return start, end
}

// Locate reports the [start, end) byte offsets of the trailer block the
// heuristics would extract from message. Useful for diagnostics; New and
// Enumerate run the same computation internally.
func Locate(message []byte, opts ...Option) (start, end int) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return locateBlock(message, o)
}
