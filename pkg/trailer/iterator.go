package trailer

// A Trailer is one key/value pair. Both slices alias the Iterator's owned
// block: they are valid until the next call to Next or Close and must be
// copied out to live longer.
type Trailer struct {
	Key   []byte
	Value []byte
}

// Iterator steps through the trailers of a single message. It owns a private
// NUL-terminated copy of the located trailer block and tokenizes it in place,
// so concurrent iterators over the same message never interfere and the
// caller's message is never mutated. An individual Iterator is not safe for
// concurrent use.
type Iterator struct {
	opts  options
	block []byte // owned copy of the trailer block plus a NUL terminator
	pos   int
}

// New locates the trailer block of message and returns an Iterator over it.
// Boundary detection and the block copy happen eagerly, here; Next only
// tokenizes. A message without a trailer block yields an empty iteration.
func New(message []byte, opts ...Option) *Iterator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, end := locateBlock(message, o)

	// The trailing NUL keeps the tokenizer's stop conditions sentinel-driven
	// and lets Close swap in a shared empty block.
	block := make([]byte, end-start+1)
	copy(block, message[start:end])

	return &Iterator{opts: o, block: block}
}

// closedBlock is the block of an exhausted or closed iterator.
var closedBlock = []byte{0}

// Close releases the owned trailer block and leaves the iterator permanently
// exhausted. Calling Close more than once is safe; using previously returned
// pairs after Close is not.
func (it *Iterator) Close() {
	it.block = closedBlock
	it.pos = 0
}

// Enumerate calls fn once per trailer of message, in source order. A non-nil
// error from fn stops the enumeration and is returned verbatim; normal
// exhaustion returns nil. The key and value slices passed to fn are only
// valid for the duration of that call.
func Enumerate(message []byte, fn func(key, value []byte) error, opts ...Option) error {
	it := New(message, opts...)
	defer it.Close()
	for {
		tr, ok := it.Next()
		if !ok {
			return nil
		}
		if err := fn(tr.Key, tr.Value); err != nil {
			return err
		}
	}
}
