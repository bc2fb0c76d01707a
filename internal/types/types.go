package types

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// ValueKind identifies which variant a Value holds
type ValueKind int

const (
	IntegerKind ValueKind = iota // 64-bit signed integer
	NullKind                     // absence of a value
)

// String returns the lower-case name of the kind
func (k ValueKind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case NullKind:
		return "null"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a scalar cell value. Only the variant selected by Kind is meaningful.
type Value struct {
	Kind    ValueKind
	Integer int64
}

// NewInteger returns an integer value
func NewInteger(i int64) Value {
	return Value{Kind: IntegerKind, Integer: i}
}

// NewNull returns the null value
func NewNull() Value {
	return Value{Kind: NullKind}
}

// IsNull reports whether v is null
func (v Value) IsNull() bool {
	return v.Kind == NullKind
}

// Int64 returns the integer payload and whether v holds one
func (v Value) Int64() (int64, bool) {
	if v.Kind != IntegerKind {
		return 0, false
	}
	return v.Integer, true
}

// Compare orders values: integers numerically, integers before null, null equal to null.
func (v Value) Compare(other Value) int {
	switch {
	case v.Kind == IntegerKind && other.Kind == IntegerKind:
		switch {
		case v.Integer < other.Integer:
			return -1
		case v.Integer > other.Integer:
			return 1
		default:
			return 0
		}
	case v.Kind == NullKind && other.Kind == NullKind:
		return 0
	case v.Kind == IntegerKind:
		return -1
	default:
		return 1
	}
}

// Equal reports whether v and other compare equal
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// String renders the value as it would appear in a result set
func (v Value) String() string {
	if v.Kind == NullKind {
		return "null"
	}
	return strconv.FormatInt(v.Integer, 10)
}

// MarshalJSON encodes integers as JSON numbers and null as JSON null
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == NullKind {
		return []byte("null"), nil
	}
	return json.Marshal(v.Integer)
}

// UnmarshalJSON accepts a JSON integer or null
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NewNull()
		return nil
	}
	var i int64
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("invalid value %s: %w", data, err)
	}
	*v = NewInteger(i)
	return nil
}

// SortValues sorts values in place using Compare
func SortValues(values []Value) {
	slices.SortStableFunc(values, func(a, b Value) int {
		return a.Compare(b)
	})
}
