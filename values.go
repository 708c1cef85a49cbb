package prism

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Values is a configuration patch for a Material: a mapping of field names (in camelCase, i.e. "opacity",
// "blendSrc", "normalScale") to new values. Patches are applied with SetValues:
//
//   - Keys that aren't fields of the Material are ignored.
//   - A value of Undefined is rejected with a logged warning and the field is left alone.
//   - Color fields are updated in place with Color.Set, so they accept hex integers, style strings, and so on.
//   - Vector and Vector2 fields are only updated when the value is itself a Vector or Vector2.
//   - "overdraw" is coerced to a number (true becomes 1).
//   - "needsUpdate" goes through SetNeedsUpdate.
//   - Everything else is assigned. Numbers convert between numeric and enum fields, enum fields accept their names
//     ("DoubleSide"), and nil clears texture slots. Values that can't be assigned are warned about and skipped.
//
// Keys are applied in sorted order.
type Values map[string]any

type undefinedValue struct{}

// Undefined marks a patch entry as deliberately unset; SetValues warns about it and skips it.
var Undefined = undefinedValue{}

func (undefinedValue) String() string { return "undefined" }

type schemaField struct {
	index []int
	typ   reflect.Type
}

var schemaCache sync.Map // reflect.Type -> map[string]schemaField

// schemaOf returns the settable fields of a Material struct type, keyed by their `prop` tag.
func schemaOf(t reflect.Type) map[string]schemaField {
	if s, ok := schemaCache.Load(t); ok {
		return s.(map[string]schemaField)
	}
	fields := map[string]schemaField{}
	collectSchemaFields(t, nil, fields)
	schemaCache.Store(t, fields)
	return fields
}

func collectSchemaFields(t reflect.Type, parent []int, out map[string]schemaField) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, parent...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectSchemaFields(f.Type, index, out)
			continue
		}
		name := f.Tag.Get("prop")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		out[name] = schemaField{index: index, typ: f.Type}
	}
}

// HasField returns true if the Material has a settable field by the given name.
func HasField(material IMaterial, name string) bool {
	_, ok := schemaOf(reflect.TypeOf(material).Elem())[name]
	return ok
}

// FieldNames returns the names of every settable field of the Material, sorted.
func FieldNames(material IMaterial) []string {
	return sortedKeys(schemaOf(reflect.TypeOf(material).Elem()))
}

var (
	colorPtrType = reflect.TypeOf((*Color)(nil))
	vectorType   = reflect.TypeOf(Vector{})
	vector2Type  = reflect.TypeOf(Vector2{})
)

func setValues(material IMaterial, values Values) {

	if values == nil {
		return
	}

	rv := reflect.ValueOf(material).Elem()
	schema := schemaOf(rv.Type())

	for _, key := range sortedKeys(values) {

		newValue := values[key]

		if _, undefined := newValue.(undefinedValue); undefined {
			logger.Warnf("%s: '%s' parameter is undefined.", material.Kind(), key)
			continue
		}

		if key == "needsUpdate" {
			if b, ok := newValue.(bool); ok {
				material.Base().SetNeedsUpdate(b)
			} else {
				logger.Warnf("%s: 'needsUpdate' must be a bool, not %T.", material.Kind(), newValue)
			}
			continue
		}

		field, exists := schema[key]
		if !exists {
			continue
		}

		if err := mergeField(key, rv.FieldByIndex(field.index), newValue); err != nil {
			logger.Warnf("%s: '%s' parameter skipped: %s.", material.Kind(), key, err)
		}

	}

}

func mergeField(key string, field reflect.Value, newValue any) error {

	switch {

	case field.Type() == colorPtrType:
		current := field.Interface().(*Color)
		if current == nil {
			color := NewColor(1, 1, 1, 1)
			if !color.Set(newValue) {
				return fmt.Errorf("%v (%T) isn't a color", newValue, newValue)
			}
			field.Set(reflect.ValueOf(color))
		} else if !current.Set(newValue) {
			return fmt.Errorf("%v (%T) isn't a color", newValue, newValue)
		}

	case field.Type() == vectorType:
		switch v := newValue.(type) {
		case Vector:
			field.Set(reflect.ValueOf(v))
		case *Vector:
			if v == nil {
				return fmt.Errorf("nil vector")
			}
			field.Set(reflect.ValueOf(*v))
		default:
			return fmt.Errorf("expected a Vector, got %T", newValue)
		}

	case field.Type() == vector2Type:
		switch v := newValue.(type) {
		case Vector2:
			field.Set(reflect.ValueOf(v))
		case *Vector2:
			if v == nil {
				return fmt.Errorf("nil vector")
			}
			field.Set(reflect.ValueOf(*v))
		default:
			return fmt.Errorf("expected a Vector2, got %T", newValue)
		}

	case key == "overdraw":
		n, ok := toNumber(newValue)
		if !ok {
			return fmt.Errorf("%v (%T) isn't a number", newValue, newValue)
		}
		field.SetFloat(n)

	default:
		return assignValue(field, newValue)

	}

	return nil

}

func assignValue(field reflect.Value, value any) error {

	if value == nil {
		switch field.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		return fmt.Errorf("nil isn't valid for %s", field.Type())
	}

	v := reflect.ValueOf(value)

	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	if field.Kind() == reflect.Pointer {
		p := reflect.New(field.Type().Elem())
		if err := assignValue(p.Elem(), value); err != nil {
			return err
		}
		field.Set(p)
		return nil
	}

	if text, ok := value.(string); ok {
		if parse, isEnum := enumParsers[field.Type()]; isEnum {
			n, ok := parse(text)
			if !ok {
				return fmt.Errorf("%q isn't a %s", text, field.Type().Name())
			}
			field.SetInt(n)
			return nil
		}
	}

	if isNumberKind(v.Kind()) && isNumberKind(field.Kind()) {
		field.Set(v.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("can't use %T as %s", value, field.Type())

}

func isNumberKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toNumber coerces the value to a float64 the way a legacy boolean field expects: bools become 0 or 1,
// nil becomes 0, numeric strings are parsed.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	}
	rv := reflect.ValueOf(value)
	if isNumberKind(rv.Kind()) {
		return rv.Convert(reflect.TypeOf(float64(0))).Float(), true
	}
	return 0, false
}
