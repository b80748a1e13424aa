package contract

import (
	"fmt"
	"reflect"
)

// Arg is one positional argument slot. The zero Arg is absent.
type Arg struct {
	value   any
	present bool
}

// Of returns a present slot holding v. Of(nil) is the null slot.
func Of(v any) Arg {
	return Arg{value: v, present: true}
}

// Absent returns the absent slot. It is equal to Arg{}.
func Absent() Arg {
	return Arg{}
}

// Null returns the present slot holding nil.
func Null() Arg {
	return Of(nil)
}

// FromAny maps a nil interface to the absent slot and anything
// else to a present slot.
func FromAny(v any) Arg {
	if v == nil {
		return Arg{}
	}
	return Of(v)
}

// Defined reports whether the slot is present.
func (a Arg) Defined() bool {
	return a.present
}

// IsNull reports whether the slot is present and holds nil,
// including typed nil pointers, maps, slices, funcs, channels
// and interfaces.
func (a Arg) IsNull() bool {
	return a.present && isNil(a.value)
}

// Value returns the held value, or nil for the absent slot.
func (a Arg) Value() any {
	return a.value
}

// String renders the slot for diagnostics.
func (a Arg) String() string {
	switch {
	case !a.present:
		return "undefined"
	case a.value == nil:
		return "null"
	default:
		return fmt.Sprintf("%#v", a.value)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Args is an ordered list of argument slots.
type Args []Arg

// ArgsOf builds present slots from the given values.
func ArgsOf(values ...any) Args {
	out := make(Args, len(values))
	for i, v := range values {
		out[i] = Of(v)
	}
	return out
}

// Len returns the number of slots.
func (a Args) Len() int {
	return len(a)
}

// At returns slot i, or the absent slot when i is out of range.
func (a Args) At(i int) Arg {
	if i < 0 || i >= len(a) {
		return Arg{}
	}
	return a[i]
}

// With returns a copy of a with slot i replaced by v. The copy
// is extended with absent slots when i is past the end. The
// receiver is never modified.
func (a Args) With(i int, v Arg) Args {
	n := len(a)
	if i >= n {
		n = i + 1
	}
	out := make(Args, n)
	copy(out, a)
	if i >= 0 {
		out[i] = v
	}
	return out
}

// Func is the explicit call signature of a function whose
// parameter assertions can be verified.
type Func func(args Args) error
