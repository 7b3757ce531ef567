// Package rect provides a Rectangle value that exposes its measurements
// as a lazy, ordered sequence of labeled attributes.
package rect

import (
	"fmt"
	"iter"
)

// Rectangle holds two named integer measurements.
// The values are stored verbatim, there is no range or positivity check.
type Rectangle struct {
	Length int
	Width  int
}

// New returns a Rectangle with the given measurements.
func New(length, width int) Rectangle {
	return Rectangle{Length: length, Width: width}
}

// Attribute is a labeled single-entry mapping,
// it pairs a field name of the Rectangle with that field's current value.
type Attribute struct {
	Name  string
	Value int
}

func (attr Attribute) String() string {
	return fmt.Sprintf("{'%s': %d}", attr.Name, attr.Value)
}

// Attributes returns the measurements of the Rectangle as a lazy sequence of labeled attributes.
// The sequence is finite and ordered: it yields exactly two elements, length before width.
// Each range over the returned sequence starts a fresh traversal that reads the current field values,
// so the sequence is restartable and iterating it never mutates the Rectangle.
// The producer suspends between elements and only resumes when the consumer asks for the next one;
// abandoning the traversal early is safe and requires no cleanup.
func (r Rectangle) Attributes() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		if !yield(Attribute{Name: "length", Value: r.Length}) {
			return
		}
		yield(Attribute{Name: "width", Value: r.Width})
	}
}

// All returns the same traversal as Attributes in a key/value sequence form.
func (r Rectangle) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if !yield("length", r.Length) {
			return
		}
		yield("width", r.Width)
	}
}

// Encoder is the consumer port of the push style attribute traversal.
type Encoder interface {
	// Encode receives a single attribute of the traversed Rectangle
	// and in case of failure, returns an error.
	Encode(Attribute) error
}

// EncoderFunc is a wrapper to convert standalone functions into a valid Encoder.
type EncoderFunc func(Attribute) error

// Encode proxies the call to the wrapped function.
func (fn EncoderFunc) Encode(attr Attribute) error {
	return fn(attr)
}

// EncodeTo pushes each attribute of the Rectangle into enc, in iteration order.
// It stops at the first error the consumer returns and propagates it unchanged.
func (r Rectangle) EncodeTo(enc Encoder) error {
	for attr := range r.Attributes() {
		if err := enc.Encode(attr); err != nil {
			return err
		}
	}
	return nil
}
