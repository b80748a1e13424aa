package contract

import "fmt"

// Rule identifies one parameter assertion.
type Rule int

// Built-in rules.
const (
	Defined Rule = iota + 1
	NotNull
	Bool
	Function
	Number
	Object
	String
	NotEmpty
)

var ruleNames = map[Rule]string{
	Defined:  "defined",
	NotNull:  "notNull",
	Bool:     "bool",
	Function: "func",
	Number:   "number",
	Object:   "object",
	String:   "string",
	NotEmpty: "notEmpty",
}

// clauses hold the rule-specific tail of the violation message.
var clauses = map[Rule]string{
	Defined:  "be specified",
	NotNull:  "not be null",
	Bool:     "be of type boolean",
	Function: "be of type function",
	Number:   "be of type number",
	Object:   "be of type object",
	String:   "be of type string",
	NotEmpty: "not be empty string",
}

// Rules returns every built-in rule in declaration order.
func Rules() []Rule {
	return []Rule{
		Defined, NotNull, Bool, Function,
		Number, Object, String, NotEmpty,
	}
}

// String returns the assertion name of the rule.
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Clause returns the text that follows "must" in the rule's
// violation message.
func (r Rule) Clause() string {
	return clauses[r]
}

// Message returns the canonical violation message for param.
func (r Rule) Message(param string) string {
	return "Parameter " + param + " must " + r.Clause() + "."
}

// ParseRule returns the rule with the given assertion name.
func ParseRule(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}
