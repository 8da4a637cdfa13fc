package cmds

import (
	"reflect"
	"strings"
)

// Var defines a flag taking one value, and name+"." to reset it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Arg(paramName(reflect.TypeFor[T]())))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Hide())
	return &value
}

// Switch defines a flag that sets true, and "!"+name to set false.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}).Hide())
	return &value
}

// Collect defines a repeatable flag, and name+"." to drop collected values.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Arg(paramName(reflect.TypeFor[T]())+"..."))
	Define(name+".", Func(func() {
		value = nil
	}).Hide())
	return &value
}

func paramName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "N"
	case reflect.Bool:
		return "BOOL"
	case reflect.String:
		if t.Name() != "string" && t.Name() != "" {
			return strings.ToUpper(t.Name())
		}
		return "STRING"
	}
	return strings.ToUpper(t.Kind().String())
}
