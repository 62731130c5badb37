// internal/anim/property/fields.go
package property

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/oleiade/reflections"

	"github.com/xkilldash9x/axi/internal/anim/units"
)

// fieldTag lets struct fields opt into a property name that differs from the
// Go field name: `axi:"scrollTop"`.
const fieldTag = "axi"

// getField reads a plain object field. Element targets use the element's own
// field store.
func getField(t *Target, name string) (any, bool) {
	if t.el != nil {
		return t.el.Field(name)
	}
	switch obj := t.obj.(type) {
	case map[string]any:
		v, ok := obj[name]
		return v, ok
	case Fields:
		return obj.Field(name)
	}
	field, ok := structFieldName(t.obj, name)
	if !ok {
		return nil, false
	}
	v, err := reflections.GetField(t.obj, field)
	if err != nil {
		return nil, false
	}
	return v, true
}

// setField assigns value to the named field. It reports false when the field
// cannot hold the value; maps and field stores always accept it.
func setField(t *Target, name string, value any) bool {
	if t.el != nil {
		t.el.SetField(name, value)
		return true
	}
	switch obj := t.obj.(type) {
	case map[string]any:
		obj[name] = value
		return true
	case Fields:
		obj.SetField(name, value)
		return true
	}
	field, ok := structFieldName(t.obj, name)
	if !ok {
		return false
	}
	ft, ok := structFieldType(t.obj, field)
	if !ok {
		return false
	}
	converted, ok := assign(ft, value)
	if !ok {
		return false
	}
	return reflections.SetField(t.obj, field, converted) == nil
}

// structFieldName maps a property name onto an exported Go field. A tagged
// field answers only to its tag; untagged fields match case-insensitively.
func structFieldName(obj any, name string) (string, bool) {
	fields, err := reflections.Fields(obj)
	if err != nil {
		return "", false
	}
	for _, field := range fields {
		tag, err := reflections.GetFieldTag(obj, field, fieldTag)
		if err != nil {
			continue
		}
		if tag != "" {
			if tag == name {
				return field, true
			}
			continue
		}
		if strings.EqualFold(field, name) {
			return field, true
		}
	}
	return "", false
}

func structFieldType(obj any, field string) (reflect.Type, bool) {
	rv := reflect.Indirect(reflect.ValueOf(obj))
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := rv.Type().FieldByName(field)
	if !ok {
		return nil, false
	}
	return sf.Type, true
}

// assign converts value into something a field of type ft can hold. Numbers
// convert between kinds and numeric strings are parsed ("12px" into a float
// field gives 12).
func assign(ft reflect.Type, value any) (any, bool) {
	if value == nil {
		return reflect.Zero(ft).Interface(), true
	}
	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(ft) {
		if ft.Kind() == reflect.Interface {
			return value, true
		}
		return vv.Convert(ft).Interface(), true
	}

	if s, ok := value.(string); ok {
		switch {
		case isNumeric(ft.Kind()):
			n, _, ok := units.Split(s)
			if !ok {
				return nil, false
			}
			vv = reflect.ValueOf(n)
		case ft.Kind() == reflect.Bool:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, false
			}
			return reflect.ValueOf(b).Convert(ft).Interface(), true
		default:
			return nil, false
		}
	}

	if isNumeric(vv.Kind()) && isNumeric(ft.Kind()) {
		return vv.Convert(ft).Interface(), true
	}
	if ft.Kind() == reflect.String {
		return reflect.ValueOf(stringify(value)).Convert(ft).Interface(), true
	}
	return nil, false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
