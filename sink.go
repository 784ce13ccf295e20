package sdfs

import "io"

// A Sink receives human-readable listing output. It accepts single
// characters, strings, and an explicit line terminator; it is never
// used for data correctness.
type Sink interface {
	WriteChar(c byte)
	WriteString(s string)
	WriteLine()
}

// WriterSink adapts an io.Writer into a Sink. Write errors are
// discarded; listing output is best effort.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// ensure WriterSink implements Sink
var _ Sink = (*WriterSink)(nil)

func (s *WriterSink) WriteChar(c byte) {
	s.w.Write([]byte{c})
}

func (s *WriterSink) WriteString(str string) {
	io.WriteString(s.w, str)
}

func (s *WriterSink) WriteLine() {
	io.WriteString(s.w, "\n")
}
