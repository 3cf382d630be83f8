package modules

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/forthic-lang/forthic/forthic"
)

// Common helper functions shared across modules.
//
// Equality and truthiness are the value discipline's concern, not any one
// module's, so they delegate to forthic.ValuesEqual/forthic.Truthy (machine-
// epsilon numeric equality and truthiness) instead of each module re-deriving
// its own notion of "equal".

func isTruthy(val interface{}) bool {
	return forthic.Truthy(val)
}

func areEqual(a, b interface{}) bool {
	return forthic.ValuesEqual(a, b)
}

func toString(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	if n, ok := val.(int); ok {
		return fmt.Sprintf("%d", n)
	}
	if n, ok := val.(int64); ok {
		return fmt.Sprintf("%d", n)
	}
	if n, ok := val.(float64); ok {
		return fmt.Sprintf("%g", n)
	}
	if b, ok := val.(bool); ok {
		if b {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%v", val)
}

func toLowerCase(val interface{}) string {
	return strings.ToLower(toString(val))
}

func randInt(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}

func forthicError(msg string) error {
	return fmt.Errorf("%s", msg)
}

func toInt(val interface{}) int {
	n, err := forthic.ConvertToInt(val)
	if err != nil {
		return 0
	}
	return int(n)
}
