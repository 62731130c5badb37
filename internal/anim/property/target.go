// internal/anim/property/target.go
package property

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/xkilldash9x/axi/internal/browser/dom"
)

// ErrUnsupportedTarget is returned by NewTarget for values that are neither
// elements nor plain objects.
var ErrUnsupportedTarget = errors.New("unsupported animation target")

// Kind is the capability class of a target, decided once by NewTarget.
type Kind int

const (
	KindElement Kind = iota + 1
	KindSVGElement
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindSVGElement:
		return "svg"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Fields is implemented by plain objects that expose named fields.
type Fields interface {
	Field(name string) (any, bool)
	SetField(name string, value any)
}

// Target is a tagged handle on an animation target. It holds a reference
// only; the caller owns the underlying value.
type Target struct {
	kind Kind
	el   dom.Element
	obj  any
}

// NewTarget classifies v. Elements become KindElement or KindSVGElement;
// map[string]any values, Fields implementations and struct pointers become
// KindObject.
func NewTarget(v any) (*Target, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedTarget)
	case dom.Element:
		if x.IsSVG() {
			return &Target{kind: KindSVGElement, el: x}, nil
		}
		return &Target{kind: KindElement, el: x}, nil
	case map[string]any:
		if x == nil {
			return nil, fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		return &Target{kind: KindObject, obj: x}, nil
	case Fields:
		return &Target{kind: KindObject, obj: x}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return &Target{kind: KindObject, obj: v}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
}

// Kind returns the capability class.
func (t *Target) Kind() Kind { return t.kind }

// IsElement reports whether the target is an HTML or SVG element.
func (t *Target) IsElement() bool {
	return t.kind == KindElement || t.kind == KindSVGElement
}

// Element returns the element for element targets.
func (t *Target) Element() (dom.Element, bool) {
	return t.el, t.el != nil
}

// Value returns the wrapped value.
func (t *Target) Value() any {
	if t.el != nil {
		return t.el
	}
	return t.obj
}
