package frame

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
)

// Representation tags of the built-in boxers.
const (
	tagTable   = "table"
	tagRecords = "records"
	tagWide    = "wide"
)

// Boxer converts one external representation to and from the canonical
// Frame. Implementations are registered once and resolved statically by tag
// or by input detection; the core never inspects representation types
// itself.
type Boxer interface {
	// Tag is the representation identifier used by Render and bind.All.
	Tag() string
	// Detect reports whether the input belongs to this representation.
	Detect(in any) bool
	// ToFrame adopts the input into a canonical Frame.
	ToFrame(in any, opts ...AdoptOption) (*Frame, error)
	// FromFrame materializes the representation from a canonical Frame.
	FromFrame(f *Frame) (any, error)
}

var (
	boxers   = make(map[string]Boxer)
	boxOrder []string
)

// Register adds a boxer to the registry. A boxer registered under an
// existing tag replaces the previous one.
func Register(b Boxer) {
	if _, ok := boxers[b.Tag()]; !ok {
		boxOrder = append(boxOrder, b.Tag())
	}
	boxers[b.Tag()] = b
}

// Boxable reports whether the input is recognized by any registered boxer
// or is already a canonical Frame.
func Boxable(in any) bool {
	if _, ok := in.(*Frame); ok {
		return true
	}
	_, ok := BoxerFor(in)

	return ok
}

// BoxerFor resolves the boxer recognizing the input, in registration order.
func BoxerFor(in any) (Boxer, bool) {
	for _, tag := range boxOrder {
		if boxers[tag].Detect(in) {
			return boxers[tag], true
		}
	}

	return nil, false
}

// Render materializes the frame into the representation named by tag.
func Render(f *Frame, tag string) (any, error) {
	b, ok := boxers[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown representation tag %q", errs.ErrNotBoxable, tag)
	}

	return b.FromFrame(f)
}

func init() {
	Register(tableBoxer{})
	Register(recordsBoxer{})
	Register(wideBoxer{})
}
