package contract

// Guard checks an options-style input: it must be specified,
// must not be nil and must be an object. A nil interface counts
// as not specified; a typed nil pointer counts as null.
func Guard(param string, v any) error {
	return Require(param, FromAny(v), Defined, NotNull, Object)
}
