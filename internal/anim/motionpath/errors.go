// internal/anim/motionpath/errors.go
package motionpath

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValidMotionPathNode is matched by every NoValidNodeError via errors.Is.
	ErrNoValidMotionPathNode = errors.New("no valid motion path node")
	// ErrUnsupportedShape is returned when no length can be computed for an element.
	ErrUnsupportedShape = errors.New("unsupported motion path shape")
)

// NoValidNodeError is returned when a selector or element does not resolve
// to a path, circle, rect, line, polyline or polygon.
type NoValidNodeError struct {
	// Query is the selector or expression that was evaluated, empty when an
	// element was passed directly.
	Query string
	// Tag is the tag of the rejected element, if there was one.
	Tag string
	// Err is the underlying query failure, if any.
	Err error
}

// Error implements the error interface by formatting the message on the fly.
func (e *NoValidNodeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("no valid motion path node for %q: %v", e.Query, e.Err)
	case e.Query != "":
		return fmt.Sprintf("no valid motion path node matches %q (expected one of %v)", e.Query, ShapeTags)
	case e.Tag != "":
		return fmt.Sprintf("<%s> is not a valid motion path node (expected one of %v)", e.Tag, ShapeTags)
	}
	return "no valid motion path node"
}

// Unwrap returns the underlying query error.
func (e *NoValidNodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNoValidMotionPathNode) hold.
func (e *NoValidNodeError) Is(target error) bool {
	return target == ErrNoValidMotionPathNode
}
