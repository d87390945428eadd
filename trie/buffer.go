package trie

// buffer is an owned, reusable byte sequence. The hash builder keeps one as
// scratch space for assembling leaf and extension node payloads; the
// finished node RLP is still a fresh allocation per node (see clone). Growth
// is the ordinary amortized-doubling behavior of append.
type buffer struct {
	b []byte
}

// reset empties the buffer while keeping its backing array.
func (buf *buffer) reset() {
	buf.b = buf.b[:0]
}

// bytes returns the current contents as a borrowed view. The view is only
// valid until the next mutation of buf.
func (buf *buffer) bytes() []byte {
	return buf.b
}

// append appends p to the buffer, growing it as needed.
func (buf *buffer) append(p ...byte) {
	buf.b = append(buf.b, p...)
}

// appendBytes appends a slice to the buffer, growing it as needed.
func (buf *buffer) appendBytes(p []byte) {
	buf.b = append(buf.b, p...)
}

// clone returns a freshly allocated copy of the buffer's contents, suitable
// for handing to a caller who will outlive the next reset.
func (buf *buffer) clone() []byte {
	out := make([]byte, len(buf.b))
	copy(out, buf.b)
	return out
}
