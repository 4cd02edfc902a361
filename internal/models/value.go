package models

import (
	"strconv"
	"strings"
)

// ValueKind identifies what an assigned Value holds.
type ValueKind int

const (
	// ValueNone is the unassigned value.
	ValueNone ValueKind = iota
	// ValueNumber holds an integer price.
	ValueNumber
	// ValueText holds raw operator text that did not parse as an integer.
	ValueText
)

// Value is the price recorded for an assignment. The zero Value is unassigned.
type Value struct {
	kind   ValueKind
	number int64
	text   string
}

// NumberValue returns a numeric Value.
func NumberValue(n int64) Value {
	return Value{kind: ValueNumber, number: n}
}

// TextValue returns a Value holding raw text.
func TextValue(s string) Value {
	return Value{kind: ValueText, text: s}
}

// ParseValue converts operator price input into a Value.
// Empty input becomes 0, integers become numbers, and anything else is kept
// as the trimmed text. It never fails.
func ParseValue(input string) Value {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return NumberValue(0)
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return NumberValue(n)
	}
	return TextValue(trimmed)
}

// Kind returns the kind of value held.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsSet reports whether the value is assigned.
func (v Value) IsSet() bool {
	return v.kind != ValueNone
}

// Number returns the integer and true when the value is numeric.
func (v Value) Number() (int64, bool) {
	return v.number, v.kind == ValueNumber
}

// String renders the value for display and export. Unassigned is "".
func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatInt(v.number, 10)
	case ValueText:
		return v.text
	default:
		return ""
	}
}
