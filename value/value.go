package value

import (
	"math"
	"strconv"
)

type undefinedType struct{}

func (undefinedType) String() string { return "undefined" }

// Undefined is the singleton host representation of JavaScript undefined.
// Null is represented by Go nil.
var Undefined any = undefinedType{}

// IsUndefined reports whether v is the undefined singleton.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedType)
	return ok
}

// Symbol is a named unique value. Identity is pointer identity, which is
// weaker than engine Symbol semantics (no global registry).
type Symbol struct {
	Description string
}

// External wraps an opaque native pointer that host code must not interpret.
type External struct {
	Data uintptr
}

// Date is a tagged millisecond timestamp, not a full Date object.
type Date struct {
	Ms float64
}

// Type mirrors napi_valuetype classification over the host model.
type Type int32

const (
	TypeUndefined Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeSymbol
	TypeObject
	TypeFunction
	TypeExternal
	TypeBigInt
)

// TypeOf classifies a host value.
func TypeOf(v any) Type {
	switch v.(type) {
	case undefinedType:
		return TypeUndefined
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case float64:
		return TypeNumber
	case string:
		return TypeString
	case *Symbol:
		return TypeSymbol
	case *Function:
		return TypeFunction
	case *External:
		return TypeExternal
	case int64:
		return TypeBigInt
	default:
		return TypeObject
	}
}

// StrictEquals implements === over the host model: primitives by value,
// everything else by identity.
func StrictEquals(a, b any) bool {
	ta, tb := TypeOf(a), TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta {
	case TypeUndefined, TypeNull:
		return true
	case TypeBoolean:
		return a.(bool) == b.(bool)
	case TypeNumber:
		x, y := a.(float64), b.(float64)
		return x == y // NaN != NaN falls out of Go float comparison
	case TypeString:
		return a.(string) == b.(string)
	case TypeBigInt:
		return a.(int64) == b.(int64)
	default:
		return a == b
	}
}

// Truthy implements JavaScript boolean coercion.
func Truthy(v any) bool {
	switch x := v.(type) {
	case undefinedType, nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	case int64:
		return x != 0
	default:
		return true
	}
}

// ToNumber implements JavaScript number coercion over the host model.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case undefinedType:
		return math.NaN()
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case int64:
		return float64(x)
	case string:
		if x == "" {
			return 0
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case *Date:
		return x.Ms
	default:
		return math.NaN()
	}
}

// ToString implements JavaScript string coercion over the host model.
func ToString(v any) string {
	switch x := v.(type) {
	case undefinedType:
		return "undefined"
	case nil:
		return "null"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return FormatNumber(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case *Symbol:
		return "Symbol(" + x.Description + ")"
	case *Function:
		return "function " + x.Name + "() { [native code] }"
	case *Error:
		return x.Error()
	case *Array:
		s := ""
		for i, e := range x.Elems {
			if i > 0 {
				s += ","
			}
			if e == nil || IsUndefined(e) {
				continue
			}
			s += ToString(e)
		}
		return s
	default:
		return "[object Object]"
	}
}

// FormatNumber renders a float64 the way JavaScript does: integral values
// without a fraction, NaN/Infinity by name.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// Int32 truncates per ToInt32 modular semantics.
func Int32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(math.Trunc(f))))
}

// Uint32 truncates per ToUint32 modular semantics.
func Uint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return uint32(int64(math.Trunc(f)))
}

// Int64 clamps per the napi_get_value_int64 convention: NaN maps to zero,
// out-of-range clamps to the int64 limits.
func Int64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}
