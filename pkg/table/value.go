package table

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ToNumber coerces a value to a float64. The second result is false when the
// value has no numeric interpretation (the equivalent of NaN).
//
// nil is not numeric. Blank strings coerce to zero. Times coerce to Unix
// milliseconds. Booleans coerce to 0 or 1.
func ToNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		return float64(value.UnixMilli()), true
	case string:
		if strings.TrimSpace(value) == "" {
			return 0, true
		}
		n, err := cast.ToFloat64E(strings.TrimSpace(value))
		if err != nil || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	}

	n, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ToString renders a value the way the search and text filters see it.
func ToString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case time.Time:
		return value.Format(time.RFC3339)
	case fmt.Stringer:
		return value.String()
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func isNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// StrictEqual compares two values without cross-type coercion. All numeric
// kinds are treated as a single number type.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if isNumeric(a) && isNumeric(b) {
		x, _ := cast.ToFloat64E(a)
		y, _ := cast.ToFloat64E(b)
		return x == y
	}

	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}

	typeA, typeB := reflect.TypeOf(a), reflect.TypeOf(b)
	if typeA != typeB || !typeA.Comparable() {
		return false
	}
	return a == b
}

// CompareValues orders two values using their natural ordering. Values of
// different kinds compare as equal, leaving their relative order to the
// stable sort.
func CompareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if isNumeric(a) && isNumeric(b) {
		x, _ := cast.ToFloat64E(a)
		y, _ := cast.ToFloat64E(b)
		return cmp.Compare(x, y)
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	return 0
}

// primitiveID returns the string form of a record id when it is a usable
// primitive: a non-empty string, an integer, or an integral float.
func primitiveID(v any) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		return id, id != ""
	case float32:
		return integralFloatID(float64(id))
	case float64:
		return integralFloatID(id)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.String:
		s := rv.String()
		return s, s != ""
	default:
		return "", false
	}
}

func integralFloatID(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}
