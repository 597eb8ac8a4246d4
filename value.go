package finsync

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind enumerates the scalar types a table cell can hold.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindText
)

// Value is a single table cell: a number, a piece of text, or null.
// The zero Value is null.
type Value struct {
	kind Kind
	num  decimal.Decimal
	str  string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Num returns a numeric value.
func Num(d decimal.Decimal) Value { return Value{kind: KindNumber, num: d} }

// NumInt returns a numeric value from an integer.
func NumInt(i int64) Value { return Num(decimal.NewFromInt(i)) }

// NumFloat returns a numeric value from a float.
func NumFloat(f float64) Value { return Num(decimal.NewFromFloat(f)) }

// Str returns a text value.
func Str(s string) Value { return Value{kind: KindText, str: s} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Decimal returns the numeric content of the value.
// ok is false when the value is not a number.
func (v Value) Decimal() (d decimal.Decimal, ok bool) { return v.num, v.kind == KindNumber }

// Text returns the text content of the value.
// ok is false when the value is not text.
func (v Value) Text() (s string, ok bool) { return v.str, v.kind == KindText }

// String renders the value the way it is persisted in a CSV cell:
// null as the empty string, numbers in their canonical decimal form.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return canonNumber(v.num)
	case KindText:
		return v.str
	}
	return ""
}

// Key returns a stable, kind-prefixed form of the value, suitable for index
// lookups and set membership. It distinguishes Num(1) from Str("1").
func (v Value) Key() string {
	switch v.kind {
	case KindNumber:
		return "n:" + canonNumber(v.num)
	case KindText:
		return "t:" + v.str
	}
	return "null"
}

// Equal reports whether two values are equal under value equality.
// Null never equals anything, not even null.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.kind == KindNull {
		return false
	}
	if v.kind == KindNumber {
		return v.num.Equal(o.num)
	}
	return v.str == o.str
}

// less reports whether v sorts strictly before o. Comparisons involving null
// or mixed kinds are always false, mirroring the semantics of comparing
// against missing data.
func (v Value) less(o Value) bool {
	if v.kind != o.kind || v.kind == KindNull {
		return false
	}
	if v.kind == KindNumber {
		return v.num.Cmp(o.num) < 0
	}
	return v.str < o.str
}

// canonNumber renders a decimal without an insignificant fractional tail, so
// that 1.50 and 1.5 share one canonical form.
func canonNumber(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ParseValue interprets a raw CSV cell: the empty string is null, anything
// that parses as a decimal is a number, and everything else is text.
func ParseValue(raw string) Value {
	if raw == "" {
		return Null()
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		return Num(d)
	}
	return Str(raw)
}

// ParseValueAs interprets a raw CSV cell with an imposed kind, used when the
// storage declares its column types. The empty string is always null.
func ParseValueAs(raw string, kind Kind) (Value, error) {
	if raw == "" {
		return Null(), nil
	}
	switch kind {
	case KindText:
		return Str(raw), nil
	case KindNumber:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Null(), err
		}
		return Num(d), nil
	}
	return ParseValue(raw), nil
}
