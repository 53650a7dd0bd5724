package billboard

import (
	"strconv"
	"strings"
)

// IdentifierKind tags how a raw path identifier was interpreted.
type IdentifierKind int

const (
	// KindMalformed is neither a code nor an integer.
	KindMalformed IdentifierKind = iota
	// KindCode is a "B"-prefixed catalog code. It is never retried as a number.
	KindCode
	// KindNumeric is a numeric catalog id.
	KindNumeric
)

func (k IdentifierKind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindNumeric:
		return "numeric"
	default:
		return "malformed"
	}
}

// Identifier is the parsed form of a billboard reference.
type Identifier struct {
	Kind    IdentifierKind
	Raw     string
	Code    string
	Numeric int
}

// ParseIdentifier classifies raw. Anything starting with "B" is a code, even when
// no such code exists.
func ParseIdentifier(raw string) Identifier {
	id := Identifier{Raw: raw}
	if strings.HasPrefix(raw, "B") {
		id.Kind = KindCode
		id.Code = raw
		return id
	}
	n, err := parseDecimal(raw)
	if err != nil {
		id.Kind = KindMalformed
		return id
	}
	id.Kind = KindNumeric
	id.Numeric = n
	return id
}

// parseDecimal reads a base 10 integer with optional surrounding whitespace and sign,
// allowing single underscores between digits ("1_0" is 10).
func parseDecimal(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return 0, strconv.ErrSyntax
	}
	if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") || strings.Contains(digits, "__") {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:len(s)-len(digits)] + strings.ReplaceAll(digits, "_", ""))
}
