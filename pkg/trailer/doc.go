// Package trailer extracts "Key: value" trailer lines (Signed-off-by:,
// Reviewed-by:, ...) from the tail of a commit-style message.
//
// # Overview
//
// A message is a title line, a blank line, body paragraphs, an optional
// trailer block and an optional "---"-prefixed patch section. Finding the
// trailer block is heuristic: the message is scanned for the patch marker,
// trailing comments/blanks/"Conflicts:" blocks are peeled off the end, and a
// backward scan then looks for the last blank-line-delimited paragraph that
// is either all trailers or contains a recognized generated trailer and at
// least 25% trailer-shaped lines. The located block is copied once into a
// buffer owned by the Iterator and tokenized in place; pairs returned by
// Next alias that buffer.
//
// API surface
//
//	it := trailer.New(message)
//	defer it.Close()
//	for {
//		tr, ok := it.Next()
//		if !ok {
//			break
//		}
//		// tr.Key and tr.Value are valid until the next Next or Close;
//		// copy them out if they must live longer.
//	}
//
//	// or callback-style:
//	_ = trailer.Enumerate(message, func(key, value []byte) error {
//		fmt.Printf("%s = %s\n", key, value)
//		return nil
//	})
//
// Lines inside the block that do not match the key/separator grammar are
// silently skipped; they are not errors. Construction cannot fail: its only
// failure mode is allocation exhaustion, which Go surfaces as a runtime
// panic rather than an error value.
//
// The separator set, comment character and generated-trailer prefixes are
// configurable via Options; the defaults match git (":", '#',
// "Signed-off-by: " and "(cherry picked from commit ").
package trailer
