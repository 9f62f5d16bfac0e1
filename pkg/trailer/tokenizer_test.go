package trailer

import "testing"

// Tokenizer-level behavior, driven through messages whose trailing paragraph
// is the block under test.

func TestTokenizeKeyWhitespaceVariants(t *testing.T) {
	got := collect(t, "Title\n\nKey : spaced\nTabbed\t: tabbed\n")
	want := []pair{{"Key", "spaced"}, {"Tabbed", "tabbed"}}
	assertPairs(t, got, want)
}

func TestTokenizeValueKeepsSeparators(t *testing.T) {
	got := collect(t, "Title\n\nK: a:b:c\n")
	assertPairs(t, got, []pair{{"K", "a:b:c"}})
}

func TestTokenizeValueWhitespaceTrim(t *testing.T) {
	// Whitespace after the separator is consumed; trailing whitespace is
	// part of the value.
	got := collect(t, "Title\n\nK:   x  \n")
	assertPairs(t, got, []pair{{"K", "x  "}})
}

func TestTokenizeMalformedLineSkipped(t *testing.T) {
	// "Bad Line" fails the key grammar (space inside the key) and is
	// silently dropped; the pairs around it survive in order.
	got := collect(t, "Title\n\nSigned-off-by: A <a@x>\nBad Line\nB: 2\n")
	want := []pair{{"Signed-off-by", "A <a@x>"}, {"B", "2"}}
	assertPairs(t, got, want)
}

func TestTokenizeCommentLineSkipped(t *testing.T) {
	got := collect(t, "Title\n\nA: 1\n# between\nB: 2\n")
	// The comment line survives boundary detection only when the block is
	// mostly trailers; inside the block the tokenizer drops it.
	want := []pair{{"A", "1"}, {"B", "2"}}
	assertPairs(t, got, want)
}

func TestTokenizeContinuation(t *testing.T) {
	got := collect(t, "Title\n\nKey: one\n two\n three\n")
	assertPairs(t, got, []pair{{"Key", "one\ntwo\nthree"}})
}

func TestTokenizeContinuationKeepsExtraSpace(t *testing.T) {
	// Exactly one leading space is the continuation marker; anything beyond
	// it is value content.
	got := collect(t, "Title\n\nKey: one\n  two\n")
	assertPairs(t, got, []pair{{"Key", "one\n two"}})
}

func TestTokenizeValueAtEndOfBlock(t *testing.T) {
	// No trailing newline: the value runs to the end of the block.
	got := collect(t, "Title\n\nK: v")
	assertPairs(t, got, []pair{{"K", "v"}})
}

func TestTokenizeEmptyValueAtEndOfBlock(t *testing.T) {
	// A separator followed directly by the end of the block leaves the
	// tokenizer waiting for a value; no pair is emitted for it.
	got := collect(t, "Title\n\nA: 1\nK:")
	assertPairs(t, got, []pair{{"A", "1"}})
}

func TestTokenizeEmptyValueBeforeNewline(t *testing.T) {
	// A separator followed directly by a newline makes that newline the
	// first value character, so the next line is absorbed into the value.
	got := collect(t, "Title\n\nK:\nB: 2\n")
	assertPairs(t, got, []pair{{"K", "\nB: 2"}})
}

func TestTokenizeStopsMidKey(t *testing.T) {
	// A key cut off by the end of the block produces no pair.
	got := collect(t, "Title\n\nSigned-off-by: A <a@x>\nKeyOnly")
	assertPairs(t, got, []pair{{"Signed-off-by", "A <a@x>"}})
}

func TestTokenizeCustomSeparators(t *testing.T) {
	got := collect(t, "Title\n\nBug #43\n", WithSeparators("#:"))
	assertPairs(t, got, []pair{{"Bug", "43"}})
}

func TestTokenizeGeneratedPrefixFailsGrammar(t *testing.T) {
	// The cherry-pick annotation anchors block detection but its leading
	// parenthesis fails the key grammar, so it never becomes a pair.
	msg := "Title\n\n" +
		"one sentence\n" +
		"two sentence\n" +
		"three sentence\n" +
		"(cherry picked from commit 8a2f09)\n"
	if start, end := Locate([]byte(msg)); start == end {
		t.Fatalf("expected block anchored by cherry-pick line")
	}
	assertPairs(t, collect(t, msg), nil)
}
