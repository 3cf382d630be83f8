package forthic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// Type Checking Utilities
// ============================================================================

// IsInt checks if a value can be treated as an integer
func IsInt(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return true
	case uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// IsFloat checks if a value can be treated as a float
func IsFloat(v interface{}) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// IsString checks if a value is a string
func IsString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// IsBool checks if a value is a boolean
func IsBool(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

// IsArray checks if a value is a slice/array
func IsArray(v interface{}) bool {
	switch v.(type) {
	case []interface{}:
		return true
	default:
		return false
	}
}

// IsRecord checks if a value is a map/record
func IsRecord(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}:
		return true
	default:
		return false
	}
}

// ConvertToInt attempts to convert a value to int64
func ConvertToInt(v interface{}) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return int64(val), nil
	case float32:
		return int64(val), nil
	case float64:
		return int64(val), nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

// ConvertToFloat attempts to convert a value to float64
func ConvertToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float32:
		return float64(val), nil
	case float64:
		return val, nil
	case int, int8, int16, int32, int64:
		i, _ := ConvertToInt(val)
		return float64(i), nil
	case uint, uint8, uint16, uint32, uint64:
		i, _ := ConvertToInt(val)
		return float64(i), nil
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

// ConvertToString attempts to convert a value to string
func ConvertToString(v interface{}) string {
	if v == nil {
		return "null"
	}

	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ============================================================================
// String Utilities
// ============================================================================

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Split splits a string by a separator
func Split(s, sep string) []string {
	if sep == "" {
		// Split into individual characters
		chars := []string{}
		for _, r := range s {
			chars = append(chars, string(r))
		}
		return chars
	}
	return strings.Split(s, sep)
}

// Join joins strings with a separator
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// Replace replaces all occurrences of old with new in s
func Replace(s, old, new string) string {
	return strings.ReplaceAll(s, old, new)
}

// ============================================================================
// Value Discipline: Equality & Truthiness
//
// These live here rather than in forthic/modules because the value
// discipline is shared by both the interpreter (DUP/SWAP conservation
// properties) and every standard module that needs to compare or branch on a
// Forthic value.
// ============================================================================

// floatEpsilon is the float64 machine epsilon, 2^-52.
const floatEpsilon = 2.220446049250313e-16

// ValuesEqual implements the equality rule: numeric cases (int, float) coerce
// to float and compare within machine epsilon; any other cross-kind
// comparison (e.g. string vs bool) is false; same-kind values compare
// structurally.
func ValuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if IsInt(a) || IsFloat(a) {
		if IsInt(b) || IsFloat(b) {
			fa, _ := ConvertToFloat(a)
			fb, _ := ConvertToFloat(b)
			diff := fa - fb
			if diff < 0 {
				diff = -diff
			}
			return diff <= floatEpsilon
		}
		return false
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, ok := bv[k]
			if !ok || !ValuesEqual(v, bval) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Truthy implements the truthiness rule: null is false, bool is itself,
// numbers are nonzero, strings/arrays/records are nonempty, and a datetime is
// always true.
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	case time.Time:
		return true
	default:
		if IsInt(val) {
			n, _ := ConvertToInt(val)
			return n != 0
		}
		if IsFloat(val) {
			f, _ := ConvertToFloat(val)
			return f != 0
		}
		return true
	}
}
