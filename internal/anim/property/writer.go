// internal/anim/property/writer.go
package property

import (
	"fmt"
	"strconv"

	"github.com/xkilldash9x/axi/internal/anim/transform"
)

// Writer applies one interpolated value to a target. tm is only consulted by
// the transform writer.
type Writer func(t *Target, prop string, value any, tm *transform.Map)

var writers = map[Mechanism]Writer{
	MechanismCSS:       writeCSS,
	MechanismAttribute: writeAttribute,
	MechanismObject:    writeObject,
	MechanismTransform: writeTransform,
}

// WriterFor returns the writer of m. Unknown mechanisms get the object writer.
func WriterFor(m Mechanism) Writer {
	if w, ok := writers[m]; ok {
		return w
	}
	return writeObject
}

// SetProgressValue writes value to prop on t through mechanism m.
func SetProgressValue(m Mechanism, t *Target, prop string, value any, tm *transform.Map) {
	WriterFor(m)(t, prop, value, tm)
}

func writeCSS(t *Target, prop string, value any, _ *transform.Map) {
	if !t.IsElement() {
		return
	}
	t.el.Style().Set(prop, stringify(value))
}

func writeAttribute(t *Target, prop string, value any, _ *transform.Map) {
	if !t.IsElement() {
		return
	}
	t.el.SetAttr(prop, stringify(value))
}

func writeObject(t *Target, prop string, value any, _ *transform.Map) {
	setField(t, prop, value)
}

func writeTransform(t *Target, prop string, value any, tm *transform.Map) {
	SetTransformProgress(t, prop, stringify(value), tm)
}

// stringify renders numbers in their shortest form so 0.5 writes as "0.5"
// rather than "0.500000".
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
