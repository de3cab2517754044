package interp

import "strconv"

// Callable is implemented by every invocable runtime value: user
// functions, lambdas, native intrinsics, and classes (which construct a
// bare instance when called).
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// isTruthy implements Lox truthiness: nil and false are falsy, every
// other value — including 0 and "" — is truthy.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements `==`/`!=` value equality: nil equals only nil, and
// there is no implicit numeric coercion between types.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a runtime value the way `print` does. Numbers drop
// a trailing ".0"; booleans print the way Go itself renders them.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		return s
	case string:
		return val
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return "nil"
	}
}

// typeName returns the type tag used by the `type` native function.
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *UserFunction, *Lambda, *NativeFunction:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return "nil"
	}
}
