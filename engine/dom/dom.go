// Package dom holds the compiled document artifact consumed by the
// renderer. Compilation itself (markup, styling, layout) happens in an
// external pipeline; this package only defines the immutable result and
// its binary container.
package dom

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/Hackzzila/FrameUi/engine/colors"
)

// Magic identifies the compiled document container:
// [F]rame [U]i [S]tandard, version 0.
var Magic = []byte{0x46, 0x55, 0x69, 0x53, 0}

// Box is one laid-out element, in logical units relative to the
// document origin. Boxes are stored in document order, root first.
type Box struct {
	Left, Top     float32
	Width, Height float32
	Background    colors.Color
}

// CompiledDocument is an immutable, pre-laid-out document ready for
// painting. Instances are safe to share between any number of event
// handlers; no mutating access is exposed after Compile.
type CompiledDocument struct {
	boxes []Box
}

// Compile seals a box list into a document. The slice is copied, so the
// caller may reuse or mutate its own copy afterwards.
func Compile(boxes []Box) *CompiledDocument {
	d := &CompiledDocument{boxes: make([]Box, len(boxes))}
	copy(d.boxes, boxes)
	return d
}

// Len reports the number of boxes in the document.
func (d *CompiledDocument) Len() int {
	if d == nil {
		return 0
	}
	return len(d.boxes)
}

// Box returns the i-th box in document order.
func (d *CompiledDocument) Box(i int) Box { return d.boxes[i] }

// Walk calls fn for every box in document order, stopping early if fn
// returns false.
func (d *CompiledDocument) Walk(fn func(i int, b Box) bool) {
	if d == nil {
		return
	}
	for i, b := range d.boxes {
		if !fn(i, b) {
			return
		}
	}
}

// Save writes the document container: magic header followed by the
// gob-encoded payload.
func (d *CompiledDocument) Save(w io.Writer) error {
	if _, err := w.Write(Magic); err != nil {
		return fmt.Errorf("dom: write magic: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(d.boxes); err != nil {
		return fmt.Errorf("dom: encode: %w", err)
	}
	return nil
}

// Load reads a document container produced by Save. A header that does
// not match Magic is rejected without reading the payload.
func Load(r io.Reader) (*CompiledDocument, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("dom: read magic: %w", err)
	}
	if !bytes.Equal(magic, Magic) {
		return nil, fmt.Errorf("dom: bad magic %x, want %x", magic, Magic)
	}
	var boxes []Box
	if err := gob.NewDecoder(r).Decode(&boxes); err != nil {
		return nil, fmt.Errorf("dom: decode: %w", err)
	}
	return &CompiledDocument{boxes: boxes}, nil
}

// LoadBytes is Load over an in-memory container, for documents embedded
// in the host binary.
func LoadBytes(data []byte) (*CompiledDocument, error) {
	return Load(bytes.NewReader(data))
}
