package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumeric parses a numeric literal in any of the dialect's spellings:
// decimal, $hex, 0xhex, %binary or 0bbinary, with an optional leading minus.
func ParseNumeric(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	var (
		v   int64
		err error
	)
	switch {
	case s[0] == '$':
		v, err = strconv.ParseInt(s[1:], 16, 64)
	case s[0] == '%':
		v, err = strconv.ParseInt(s[1:], 2, 64)
	case len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		v, err = strconv.ParseInt(s[2:], 16, 64)
	case len(s) > 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B'):
		v, err = strconv.ParseInt(s[2:], 2, 64)
	default:
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// FormatNumeric renders a value simultaneously in binary, decimal and hex,
// the form shown in hover popups: 255 -> "%11111111, 255, $FF".
func FormatNumeric(v int64) string {
	sign := ""
	abs := v
	if v < 0 {
		sign = "-"
		abs = -v
	}
	return fmt.Sprintf("%s%%%s, %s%d, %s$%s",
		sign, strconv.FormatInt(abs, 2),
		sign, abs,
		sign, strings.ToUpper(strconv.FormatInt(abs, 16)))
}
