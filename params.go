package twitterapi

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/structs"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBytes
	kindOther
)

// Value is a request parameter value. Only string and integer values
// participate in request signing; any other kind is transmitted but
// silently excluded from the signature base string. Modelling the kind
// explicitly makes that exclusion a visible case instead of a runtime
// type check.
type Value struct {
	kind valueKind
	str  string
	num  int64
	raw  interface{}
}

// String returns a string-valued parameter.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Int returns an integer-valued parameter.
func Int(n int) Value {
	return Value{kind: kindInt, num: int64(n)}
}

// Int64 returns an integer-valued parameter.
func Int64(n int64) Value {
	return Value{kind: kindInt, num: n}
}

// Uint64 returns an integer-valued parameter. Values beyond the int64
// range keep their decimal form as a string, which signs and renders
// identically.
func Uint64(n uint64) Value {
	if n > uint64(1<<63-1) {
		return String(strconv.FormatUint(n, 10))
	}
	return Int64(int64(n))
}

// Bytes returns a raw binary parameter, such as media content for an
// upload call. Binary values are sent as multipart file parts and are
// never signed.
func Bytes(b []byte) Value {
	return Value{kind: kindBytes, raw: b}
}

// Any classifies an arbitrary value. Strings and the integer kinds map
// to signable parameters; everything else is carried as an opaque
// value.
func Any(v interface{}) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(t)
	case int8:
		return Int64(int64(t))
	case int16:
		return Int64(int64(t))
	case int32:
		return Int64(int64(t))
	case int64:
		return Int64(t)
	case uint:
		return Uint64(uint64(t))
	case uint8:
		return Int64(int64(t))
	case uint16:
		return Int64(int64(t))
	case uint32:
		return Int64(int64(t))
	case uint64:
		return Uint64(t)
	case []byte:
		return Bytes(t)
	default:
		return Value{kind: kindOther, raw: v}
	}
}

// scalar reports whether the value takes part in signing.
func (v Value) scalar() bool {
	return v.kind == kindString || v.kind == kindInt
}

// Render returns the wire form of the value.
func (v Value) Render() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindBytes:
		return string(v.raw.([]byte))
	default:
		return fmt.Sprint(v.raw)
	}
}

// Params holds the query or body parameters for a single request.
type Params map[string]Value

// ParamsFromStruct builds Params from the exported fields of a struct,
// honoring `structs` field tags. Field values are classified with Any.
func ParamsFromStruct(v interface{}) Params {
	params := Params{}
	for key, val := range structs.Map(v) {
		params[key] = Any(val)
	}
	return params
}

// sortedKeys returns the parameter names in ascending byte order.
func (p Params) sortedKeys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
