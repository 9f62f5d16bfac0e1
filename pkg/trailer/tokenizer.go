package trailer

import "strings"

// tokenState is the tokenizer's per-character dispatch state. One Next call
// drives the machine from stateStart through at most one completed pair.
type tokenState int

const (
	stateStart tokenState = iota
	stateKey
	stateKeyWS
	stateSepWS
	stateValue
	stateValueNL
	stateValueEnd
	stateIgnore
)

// Next returns the next trailer pair, or ok == false once the block is
// exhausted. The false result is sticky: further calls keep returning it.
//
// The tokenizer walks the owned block one byte at a time and mutates it in
// place: separators and newlines are overwritten with NUL so the returned
// pair is a pair of subslices, never a copy. A malformed line (anything not
// matching "key [ws] sep [ws] value") is consumed through its newline and
// produces no output. A value continues across lines that start with exactly
// one space; the embedded newline stays in the value and the continuation
// space is dropped by letting a write cursor trail the read cursor, which
// keeps a continued value a single contiguous span.
func (it *Iterator) Next() (Trailer, bool) {
	block := it.block
	if block[it.pos] == 0 {
		return Trailer{}, false
	}

	var (
		state            = stateStart
		keyStart, keyEnd int
		valStart, valEnd int
		w                int // write cursor, trails r once a continuation space is dropped
	)

	r := it.pos
	for {
		c := block[r]
		switch state {
		case stateStart:
			if c == 0 {
				it.pos = r
				return Trailer{}, false
			}
			keyStart = r
			state = stateKey

		case stateKey:
			switch {
			case c == 0:
				it.pos = r
				return Trailer{}, false
			case isAlnum(c) || c == '-':
				r++
			case c == ' ' || c == '\t':
				block[r] = 0
				keyEnd = r
				r++
				state = stateKeyWS
			case strings.IndexByte(it.opts.separators, c) >= 0:
				block[r] = 0
				keyEnd = r
				r++
				state = stateSepWS
			default:
				state = stateIgnore
			}

		case stateKeyWS:
			switch {
			case c == 0:
				it.pos = r
				return Trailer{}, false
			case c == ' ' || c == '\t':
				r++
			case strings.IndexByte(it.opts.separators, c) >= 0:
				r++
				state = stateSepWS
			default:
				state = stateIgnore
			}

		case stateSepWS:
			switch {
			case c == 0:
				it.pos = r
				return Trailer{}, false
			case c == ' ' || c == '\t':
				r++
			default:
				valStart = r
				w = r
				block[w] = c
				w++
				r++
				state = stateValue
			}

		case stateValue:
			switch {
			case c == 0:
				valEnd = w
				state = stateValueEnd
			case c == '\n':
				block[w] = '\n'
				w++
				r++
				state = stateValueNL
			default:
				block[w] = c
				w++
				r++
			}

		case stateValueNL:
			if c == ' ' {
				// continuation: keep the newline, drop this one space
				r++
				state = stateValue
				continue
			}
			block[w-1] = 0
			valEnd = w - 1
			state = stateValueEnd

		case stateValueEnd:
			it.pos = r
			return Trailer{
				Key:   block[keyStart:keyEnd],
				Value: block[valStart:valEnd],
			}, true

		case stateIgnore:
			switch {
			case c == 0:
				it.pos = r
				return Trailer{}, false
			case c == '\n':
				r++
				state = stateStart
			default:
				r++
			}
		}
	}
}
