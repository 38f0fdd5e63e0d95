package serialize

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	// SecretMask prefixes the visible tail of a hashed secret
	SecretMask = "******"
	// PasswordMask replaces every password regardless of its value
	PasswordMask = "**********"
	// SecretTail is how many trailing characters of a hashed secret stay visible
	SecretTail = 4
	// DefaultTimeLayout mirrors the browser rendering of a Date
	DefaultTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
	// InvalidDate is rendered for timestamps that are not numbers
	InvalidDate = "Invalid Date"
)

// maxEpochMs is the largest distance from the epoch a date can represent.
const maxEpochMs = 8.64e15

func String(s string) string {
	return s
}

// Bool renders "yes" for truthy values and "no" otherwise.
func Bool(v any) string {
	if Truthy(v) {
		return "yes"
	}
	return "no"
}

// Timestamp renders Unix epoch seconds in the local timezone.
func Timestamp(v any) string {
	return formatTimestamp(v, time.Local, DefaultTimeLayout)
}

func Duration(v any) string {
	return Stringify(v)
}

func Number(v any) string {
	return Stringify(v)
}

// HashedSecret keeps the last four characters of the value behind a fixed
// mask. Values shorter than four characters are shown in full after the mask.
func HashedSecret(v any) string {
	s := []rune(Stringify(v))
	if len(s) > SecretTail {
		s = s[len(s)-SecretTail:]
	}
	return SecretMask + string(s)
}

func Password(_ any) string {
	return PasswordMask
}

func URL(s string) string {
	return s
}

// Var stringifies the value as is.
// TODO: pin down what "var" fields are meant to show once AAC documents them.
func Var(v any) string {
	return Stringify(v)
}

// Stringify is the shared rendering for untyped values. nil renders as the
// empty string, not "null". Floats render in plain decimal without trailing
// zeros and never switch to exponent form, so 1e21 renders as
// "1000000000000000000000". json.Number keeps its literal text ("1e21").
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatFloat(val, 64)
	case float32:
		return formatFloat(float64(val), 32)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// Truthy reports whether v counts as set: nil, false, numeric zero, NaN,
// the empty string and nil references are false, everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// toNumber converts a value the way arithmetic on it would: booleans are
// 0 or 1, strings are parsed, anything else is NaN.
func toNumber(v any) float64 {
	switch val := v.(type) {
	case nil:
		return math.NaN()
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return math.NaN()
	}
}

func formatTimestamp(v any, loc *time.Location, layout string) string {
	ms := math.Trunc(toNumber(v) * 1000)
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMs {
		return InvalidDate
	}
	return time.UnixMilli(int64(ms)).In(loc).Format(layout)
}
