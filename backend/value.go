package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// NullKind is the kind of the zero Value.
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a json value.  The zero Value is null.
// Values are immutable: constructors and accessors copy arrays and objects.
type Value struct {
	kind Kind
	b    bool
	n    float64
	lit  json.Number // decoded number text, empty for constructed numbers
	s    string
	a    []Value
	o    map[string]Value
}

// Params are the json-encoded body parameters of a request.
type Params map[string]Value

// Null creates a null Value.
func Null() Value {
	return Value{}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// Number creates a numeric Value.
func Number(n float64) Value {
	return Value{kind: NumberKind, n: n}
}

// Int creates a numeric Value from an integer.
func Int(i int) Value {
	return Number(float64(i))
}

// String creates a string Value.
func String(s string) Value {
	return Value{kind: StringKind, s: s}
}

// Array creates an array Value of the elements.
func Array(elements ...Value) Value {
	a := make([]Value, len(elements))
	copy(a, elements)
	return Value{kind: ArrayKind, a: a}
}

// Object creates an object Value of the members.
func Object(members map[string]Value) Value {
	o := make(map[string]Value, len(members))
	for k, v := range members {
		o[k] = v
	}
	return Value{kind: ObjectKind, o: o}
}

// ValueOf converts decoded json (as produced by json.Unmarshal into an interface{}) or plain go values into a Value.
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Int(v), nil
	case int64:
		return Number(float64(v)), nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return Null(), fmt.Errorf("parsing number %q: %w", v, err)
		}
		return Value{kind: NumberKind, n: n, lit: v}, nil
	case string:
		return String(v), nil
	case []interface{}:
		a := make([]Value, len(v))
		for i, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return Null(), fmt.Errorf("index %v: %w", i, err)
			}
			a[i] = ev
		}
		return Value{kind: ArrayKind, a: a}, nil
	case map[string]interface{}:
		o := make(map[string]Value, len(v))
		for k, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return Null(), fmt.Errorf("member %q: %w", k, err)
			}
			o[k] = ev
		}
		return Value{kind: ObjectKind, o: o}, nil
	default:
		return Null(), fmt.Errorf("unsupported json type %T", x)
	}
}

// Kind is the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull determines if the value is null.
func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// AsBool returns the boolean and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// AsNumber returns the number and whether the value is a number.
// Decoded numbers that do not fit a float64 exactly are rounded; see Literal.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == NumberKind
}

// Literal is the json text of the number, as it was decoded.
// Numbers made by Number or Int are formatted like encoding/json formats a float64.
func (v Value) Literal() (json.Number, bool) {
	if v.kind != NumberKind {
		return "", false
	}
	if len(v.lit) != 0 {
		return v.lit, true
	}
	b, err := json.Marshal(v.n)
	if err != nil {
		return "", false
	}
	return json.Number(b), true
}

// AsString returns the string and whether the value is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

// AsArray returns a copy of the elements and whether the value is an array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	a := make([]Value, len(v.a))
	copy(a, v.a)
	return a, true
}

// AsObject returns a copy of the members and whether the value is an object.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return Object(v.o).o, true
}

// Interface converts the value to the plain go types used by encoding/json.
func (v Value) Interface() interface{} {
	switch v.kind {
	case BoolKind:
		return v.b
	case NumberKind:
		return v.n
	case StringKind:
		return v.s
	case ArrayKind:
		a := make([]interface{}, len(v.a))
		for i, e := range v.a {
			a[i] = e.Interface()
		}
		return a
	case ObjectKind:
		o := make(map[string]interface{}, len(v.o))
		for k, e := range v.o {
			o[k] = e.Interface()
		}
		return o
	default:
		return nil
	}
}

// MarshalJSON implements the json.Marshaler interface.
// Numbers that are not finite cannot be encoded.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NullKind:
		return []byte("null"), nil
	case BoolKind:
		return json.Marshal(v.b)
	case NumberKind:
		if len(v.lit) != 0 {
			return []byte(v.lit), nil
		}
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return nil, fmt.Errorf("unsupported number: %v", v.n)
		}
		return json.Marshal(v.n)
	case StringKind:
		return json.Marshal(v.s)
	case ArrayKind:
		if v.a == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.a)
	case ObjectKind:
		if v.o == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.o)
	default:
		return nil, fmt.Errorf("unknown value kind: %v", v.kind)
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Numbers keep their json text so large integers are encoded back unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x interface{}
	if err := dec.Decode(&x); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after json value")
	}
	v2, err := ValueOf(x)
	if err != nil {
		return err
	}
	*v = v2
	return nil
}
