package httputil

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotANumber = errors.New("this is not a valid amount")

var stripRe = regexp.MustCompile(`(?i)\s|\x{202F}|R\$\s?`)

// ParseAmount parses a user-entered monetary amount.
//
// It accepts both separator conventions: "23,5", "23.5", "1.234,56",
// "1,234.56", "1.234.567" and currency-prefixed input like "R$ 1.234,56".
// The last separator, comma or dot, is the decimal separator; all earlier
// ones are removed as thousands separators.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Decimal{}, ErrNotANumber
	}

	// Remove spaces (including narrow no-break space) and the currency symbol
	s = stripRe.ReplaceAllString(s, "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// dots are thousands separators, the last comma is the decimal point
			s = strings.ReplaceAll(s, ".", "")
			s = replaceLast(s, ",", ".")
		} else {
			// commas are thousands separators, the dot already is the decimal point
			s = strings.ReplaceAll(s, ",", "")
		}

	case hasComma:
		// more than one comma: the last one is decimal, the rest are thousands
		parts := strings.Split(s, ",")
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]

	case hasDot:
		// more than one dot: the last one is decimal, the rest are thousands
		if strings.Count(s, ".") > 1 {
			parts := strings.Split(s, ".")
			s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
		}
	}

	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrNotANumber
	}

	return parsed, nil
}

func replaceLast(s, old, new string) string {
	i := strings.LastIndex(s, old)
	if i < 0 {
		return s
	}

	return s[:i] + new + s[i+len(old):]
}
