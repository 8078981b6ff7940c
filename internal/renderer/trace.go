package renderer

import (
	"io"

	"gopkg.in/yaml.v3"
)

// TraceWriter streams frames as a multi-document YAML file, one document per frame
type TraceWriter struct {
	enc *yaml.Encoder
}

// NewTraceWriter creates a TraceWriter on w
func NewTraceWriter(w io.Writer) *TraceWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &TraceWriter{enc: enc}
}

// WriteFrame appends one frame to the trace
func (t *TraceWriter) WriteFrame(f *Frame) error {
	return t.enc.Encode(f)
}

// Close flushes the encoder
func (t *TraceWriter) Close() error {
	return t.enc.Close()
}
