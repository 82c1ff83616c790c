package lexer

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dhamidi/plain/syntax"
)

// String is a double-quoted literal. It keeps the quotes and escapes of the
// source text.
type String struct {
	raw         string
	punctuation string
}

func NewString(raw, punctuation string) String {
	return String{raw: raw, punctuation: punctuation}
}

func (s String) Category() syntax.Category {
	return syntax.StringCategory
}

func (s String) Equal(other syntax.Head) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (s String) Punctuation() string {
	return s.punctuation
}

func (s String) String() string {
	return s.raw + s.punctuation
}

// Value returns the literal with quotes removed and escapes resolved.
// Escapes Go does not know are kept verbatim.
func (s String) Value() string {
	if v, err := strconv.Unquote(s.raw); err == nil {
		return v
	}
	return strings.TrimSuffix(strings.TrimPrefix(s.raw, `"`), `"`)
}

// Number is an exact decimal literal. Scale is the number of fractional
// digits written in the source, so 3.50 prints as 3.50 and not 3.5.
type Number struct {
	value       *big.Rat
	scale       int
	punctuation string
}

// ParseNumber parses an optionally negative decimal with an optional
// fractional part, optionally followed by a comma, period or colon.
func ParseNumber(text string) (Number, error) {
	m := numberPattern.FindStringSubmatch(text)
	if m == nil {
		return Number{}, fmt.Errorf("invalid number %q", text)
	}
	digits := m[1]
	value, ok := new(big.Rat).SetString(digits)
	if !ok {
		return Number{}, fmt.Errorf("invalid number %q", text)
	}
	scale := 0
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		scale = len(digits) - i - 1
	}
	return Number{value: value, scale: scale, punctuation: m[2]}, nil
}

func (n Number) Category() syntax.Category {
	return syntax.NumberCategory
}

// Rat returns a copy of the exact value.
func (n Number) Rat() *big.Rat {
	if n.value == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(n.value)
}

func (n Number) Scale() int {
	return n.scale
}

func (n Number) Punctuation() string {
	return n.punctuation
}

// Equal compares values, so 3.50 equals 3.5.
func (n Number) Equal(other syntax.Head) bool {
	o, ok := other.(Number)
	return ok && n.punctuation == o.punctuation && n.Rat().Cmp(o.Rat()) == 0
}

func (n Number) String() string {
	return n.Rat().FloatString(n.scale) + n.punctuation
}
