package contract

import (
	"fmt"
	"reflect"
)

// Check applies rule to the slot passed as param. It returns a
// *Violation when the slot does not satisfy the rule.
func Check(rule Rule, param string, a Arg) error {
	if satisfies(rule, a) {
		return nil
	}
	return Violate(rule, param)
}

// Require applies rules in order and returns the first
// violation.
func Require(param string, a Arg, rules ...Rule) error {
	for _, r := range rules {
		if err := Check(r, param, a); err != nil {
			return err
		}
	}
	return nil
}

// CheckDefined fails when the slot is absent.
func CheckDefined(param string, a Arg) error { return Check(Defined, param, a) }

// CheckNotNull fails when the slot holds nil.
func CheckNotNull(param string, a Arg) error { return Check(NotNull, param, a) }

// CheckBool fails unless the slot holds a bool.
func CheckBool(param string, a Arg) error { return Check(Bool, param, a) }

// CheckFunction fails unless the slot holds a non-nil func.
func CheckFunction(param string, a Arg) error { return Check(Function, param, a) }

// CheckNumber fails unless the slot holds an integer or float.
func CheckNumber(param string, a Arg) error { return Check(Number, param, a) }

// CheckObject fails unless the slot holds a map, struct,
// pointer, slice or array.
func CheckObject(param string, a Arg) error { return Check(Object, param, a) }

// CheckString fails unless the slot holds a string.
func CheckString(param string, a Arg) error { return Check(String, param, a) }

// CheckNotEmpty fails when the slot holds the empty string.
func CheckNotEmpty(param string, a Arg) error { return Check(NotEmpty, param, a) }

func satisfies(rule Rule, a Arg) bool {
	if _, ok := ruleNames[rule]; !ok {
		panic(fmt.Sprintf("contract: unknown rule %d", int(rule)))
	}

	switch rule {
	case Defined:
		return a.Defined()
	case NotNull:
		return !a.IsNull()
	case NotEmpty:
		s, ok := a.Value().(string)
		return !a.Defined() || !ok || s != ""
	}

	if !a.Defined() || a.IsNull() {
		return false
	}

	kind := reflect.TypeOf(a.Value()).Kind()
	switch rule {
	case Bool:
		return kind == reflect.Bool
	case Function:
		return kind == reflect.Func
	case Number:
		return isNumberKind(kind)
	case Object:
		switch kind {
		case reflect.Map, reflect.Struct, reflect.Ptr,
			reflect.Slice, reflect.Array:
			return true
		}
		return false
	default:
		return kind == reflect.String
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
