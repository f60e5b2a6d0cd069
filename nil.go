package collections

import "reflect"

// Nillable reports whether values of type T can be nil.
func Nillable[T any]() bool {
	return canBeNil(reflect.TypeFor[T]())
}

// IsNil reports whether v is nil: a nil interface, or a nil pointer, map,
// slice, channel or func (also when boxed in an interface).
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	return canBeNil(rv.Type()) && rv.IsNil()
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
