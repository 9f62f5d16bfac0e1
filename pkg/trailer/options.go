package trailer

const (
	defaultSeparators  = ":"
	defaultCommentChar = '#'
)

// Trailers inserted by tooling are recognized by literal prefix even when the
// surrounding paragraph is mostly prose.
var defaultGeneratedPrefixes = []string{
	"Signed-off-by: ",
	"(cherry picked from commit ",
}

// options holds the tunables read by the boundary heuristics and the
// tokenizer. The heuristics themselves (25% threshold, conflicts-block
// skipping, continuation folding) are not configurable.
type options struct {
	separators        string
	commentChar       byte
	generatedPrefixes []string
}

func defaultOptions() options {
	return options{
		separators:        defaultSeparators,
		commentChar:       defaultCommentChar,
		generatedPrefixes: defaultGeneratedPrefixes,
	}
}

// Option configures an Iterator or an Enumerate call.
type Option func(*options)

// WithSeparators sets the characters accepted as key/value separators.
// The first separator in a line wins; git's default is ":". An empty string
// keeps the default.
func WithSeparators(separators string) Option {
	return func(o *options) {
		if separators != "" {
			o.separators = separators
		}
	}
}

// WithCommentChar sets the character that marks a comment line, matching
// git's core.commentChar. The default is '#'.
func WithCommentChar(c byte) Option {
	return func(o *options) {
		o.commentChar = c
	}
}

// WithGeneratedPrefixes replaces the set of literal line prefixes that are
// always treated as trailers regardless of separator grammar.
func WithGeneratedPrefixes(prefixes ...string) Option {
	return func(o *options) {
		o.generatedPrefixes = prefixes
	}
}
